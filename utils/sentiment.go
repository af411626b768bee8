package utils

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"github.com/aishwaryacr5/Taste-perception/models"
)

// ClassifySentiment buckets a comment by the sign of its VADER compound
// polarity score: >0 Positive, <0 Negative, exactly 0 Neutral. Empty or
// valence-free text scores 0. The lexicon is fixed, so the same text always
// yields the same label.
func ClassifySentiment(comment string) models.Sentiment {
	parsed := sentitext.Parse(comment, lexicon.DefaultLexicon)
	polarity := sentitext.PolarityScore(parsed)

	switch {
	case polarity.Compound > 0:
		return models.SentimentPositive
	case polarity.Compound < 0:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
