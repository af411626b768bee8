package models

// NutritionRecord holds the nutrition facts for one analyzed food item.
// Optional nutrients are pointers so the API can tell "not reported" apart
// from an explicit zero; rule evaluation flattens both to zero via Eval().
type NutritionRecord struct {
	Food          string   `json:"food"`
	Calories      *float64 `json:"calories,omitempty"`
	ProteinG      *float64 `json:"protein_g,omitempty"`
	SugarsG       *float64 `json:"sugars_g,omitempty"`
	SodiumMg      *float64 `json:"sodium_mg,omitempty"`
	TotalFatG     *float64 `json:"total_fat_g,omitempty"`
	CholesterolMg *float64 `json:"cholesterol_mg,omitempty"`
	PotassiumMg   *float64 `json:"potassium_mg,omitempty"`
	TotalCarbsG   *float64 `json:"total_carbs_g,omitempty"`
}

// NutrientValues is the flattened view used by the advice rules.
type NutrientValues struct {
	Calories    float64
	Protein     float64
	Sugars      float64
	Sodium      float64
	Fat         float64
	Cholesterol float64
	Potassium   float64
	Carbs       float64
}

// Eval returns the record's nutrients with absent values read as zero.
func (n NutritionRecord) Eval() NutrientValues {
	return NutrientValues{
		Calories:    orZero(n.Calories),
		Protein:     orZero(n.ProteinG),
		Sugars:      orZero(n.SugarsG),
		Sodium:      orZero(n.SodiumMg),
		Fat:         orZero(n.TotalFatG),
		Cholesterol: orZero(n.CholesterolMg),
		Potassium:   orZero(n.PotassiumMg),
		Carbs:       orZero(n.TotalCarbsG),
	}
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
