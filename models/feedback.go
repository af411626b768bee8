package models

import "fmt"

// Sentiment is the polarity bucket assigned to a feedback comment.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// FeedbackEntry is one submitted feedback row. Entries are append-only:
// once persisted they are never mutated or deleted.
type FeedbackEntry struct {
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Satisfaction int       `json:"satisfaction"`
	Comment      string    `json:"comment"`
	Sentiment    Sentiment `json:"sentiment"`
}

// Validate checks the submission fields before anything is persisted.
func (f FeedbackEntry) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: name", ErrInputMissing)
	}
	if f.Comment == "" {
		return fmt.Errorf("%w: comment", ErrInputMissing)
	}
	if f.Age < 1 || f.Age > 120 {
		return fmt.Errorf("%w: age must be between 1 and 120", ErrInputMissing)
	}
	if f.Satisfaction < 1 || f.Satisfaction > 10 {
		return fmt.Errorf("%w: satisfaction must be between 1 and 10", ErrInputMissing)
	}
	return nil
}
