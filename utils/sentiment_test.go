package utils

import (
	"testing"

	"github.com/aishwaryacr5/Taste-perception/models"
)

func TestClassifySentiment(t *testing.T) {
	cases := []struct {
		comment string
		want    models.Sentiment
	}{
		{"I love this app, the analysis was great and super helpful!", models.SentimentPositive},
		{"Terrible results, the detection was wrong and useless.", models.SentimentNegative},
		{"", models.SentimentNeutral},
		{"The report was printed on paper.", models.SentimentNeutral},
	}

	for _, tc := range cases {
		if got := ClassifySentiment(tc.comment); got != tc.want {
			t.Errorf("ClassifySentiment(%q) = %s, want %s", tc.comment, got, tc.want)
		}
	}
}

func TestClassifySentimentIsDeterministic(t *testing.T) {
	comments := []string{
		"wonderful and accurate",
		"slow, buggy, disappointing",
		"it ran",
	}
	for _, c := range comments {
		first := ClassifySentiment(c)
		for i := 0; i < 5; i++ {
			if got := ClassifySentiment(c); got != first {
				t.Fatalf("classification of %q changed from %s to %s", c, first, got)
			}
		}
	}
}
