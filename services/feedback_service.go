package services

import (
	"github.com/aishwaryacr5/Taste-perception/models"
	"github.com/aishwaryacr5/Taste-perception/storage"
	"github.com/aishwaryacr5/Taste-perception/utils"
)

// FeedbackService owns the feedback pipeline: validate the submission,
// classify the comment's sentiment, append to the persisted store.
type FeedbackService struct {
	store *storage.FeedbackCSV
}

func NewFeedbackService(store *storage.FeedbackCSV) *FeedbackService {
	return &FeedbackService{store: store}
}

// Submit validates, classifies and persists one feedback entry. Nothing is
// appended when validation fails. The returned entry carries the assigned
// sentiment.
func (s *FeedbackService) Submit(name string, age, satisfaction int, comment string) (models.FeedbackEntry, error) {
	entry := models.FeedbackEntry{
		Name:         name,
		Age:          age,
		Satisfaction: satisfaction,
		Comment:      comment,
	}
	if err := entry.Validate(); err != nil {
		return models.FeedbackEntry{}, err
	}
	entry.Sentiment = utils.ClassifySentiment(comment)

	if err := s.store.Append(entry); err != nil {
		return models.FeedbackEntry{}, err
	}
	return entry, nil
}

// Summary returns per-sentiment counts over everything persisted so far.
// An empty map means no feedback has been submitted yet.
func (s *FeedbackService) Summary() (map[models.Sentiment]int, error) {
	return s.store.CountBySentiment()
}

// History returns all persisted entries in submission order.
func (s *FeedbackService) History() ([]models.FeedbackEntry, error) {
	return s.store.ReadAll()
}
