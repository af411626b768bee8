package utils

import (
	"strings"

	"github.com/aishwaryacr5/Taste-perception/models"
)

// ExtractHealthGoals derives dietary-intent flags from a free-text prompt.
// Matching is case-insensitive substring search only, no tokenization.
// Note: the bare "bp" keyword also matches inside unrelated words ("bpm",
// "subpar"). Kept as documented behavior; tightening it would change which
// prompts trigger the blood-pressure advice.
func ExtractHealthGoals(prompt string) models.HealthGoalFlags {
	p := strings.ToLower(prompt)
	return models.HealthGoalFlags{
		Diabetes:          strings.Contains(p, "diabetes"),
		WeightLoss:        containsAny(p, "weight loss", "losing weight"),
		HighBloodPressure: containsAny(p, "blood pressure", "bp", "hypertension"),
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
