package utils

import "github.com/aishwaryacr5/Taste-perception/models"

// Advisory is a structured finding you can show in your API / UI.
type Advisory struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AdviseFoodMessages keeps the simple signature (strings only).
func AdviseFoodMessages(n models.NutritionRecord, goals models.HealthGoalFlags) []string {
	advs := AdviseFood(n, goals)
	out := make([]string, 0, len(advs))
	for _, a := range advs {
		out = append(out, a.Message)
	}
	return out
}

// AdviseFood walks the threshold rules in a fixed order and emits one
// advisory per triggered rule. Thresholds are strict (>). Rules are
// independent: every rule that triggers fires, and the output order always
// equals the rule order below. Absent nutrients evaluate as zero. When no
// rule triggers, exactly one fallback advisory is returned.
func AdviseFood(n models.NutritionRecord, goals models.HealthGoalFlags) []Advisory {
	v := n.Eval()
	advice := []Advisory{}

	if v.Calories > 500 {
		msg := "High in calories."
		if goals.WeightLoss {
			msg += " Try to limit this if you're trying to lose weight."
		}
		advice = append(advice, Advisory{Code: "high_calories", Message: msg})
	}

	if v.Sugars > 20 {
		msg := "High sweetness level."
		if goals.Diabetes {
			msg += " This may spike blood sugar; go for lower glycemic index foods."
		} else {
			msg += " Consume moderately to avoid sugar crashes."
		}
		advice = append(advice, Advisory{Code: "high_sugar", Message: msg})
	}

	if v.Sodium > 1500 {
		msg := "Very salty!"
		if goals.HighBloodPressure {
			msg += " High sodium may increase blood pressure; consider low-sodium alternatives."
		}
		advice = append(advice, Advisory{Code: "high_sodium", Message: msg})
	}

	if v.Protein > 15 {
		advice = append(advice, Advisory{
			Code:    "good_protein",
			Message: "Good protein source, helpful for muscle maintenance.",
		})
	}

	if v.Fat > 20 {
		advice = append(advice, Advisory{
			Code:    "high_fat",
			Message: "High in fat. Consume moderately if aiming for weight control.",
		})
	}

	if v.Cholesterol > 200 {
		advice = append(advice, Advisory{
			Code:    "high_cholesterol",
			Message: "High cholesterol content. Reduce intake for heart health.",
		})
	}

	if v.Potassium > 400 {
		advice = append(advice, Advisory{
			Code:    "good_potassium",
			Message: "Good potassium source, helps with muscle function and blood pressure regulation.",
		})
	}

	if v.Carbs > 50 {
		advice = append(advice, Advisory{
			Code:    "high_carbs",
			Message: "High in carbs. If you're watching carbs (e.g., keto diet), consider alternatives.",
		})
	}

	if len(advice) == 0 {
		advice = append(advice, Advisory{
			Code:    "balanced",
			Message: "Balanced food. Looks like a healthy option!",
		})
	}

	return advice
}
