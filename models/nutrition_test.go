package models

import "testing"

func TestEvalTreatsAbsentAsZero(t *testing.T) {
	cal := 320.0
	n := NutritionRecord{Food: "Toast", Calories: &cal}

	v := n.Eval()
	if v.Calories != 320 {
		t.Errorf("expected calories 320, got %v", v.Calories)
	}
	if v.Protein != 0 || v.Sugars != 0 || v.Sodium != 0 || v.Fat != 0 ||
		v.Cholesterol != 0 || v.Potassium != 0 || v.Carbs != 0 {
		t.Errorf("absent fields must evaluate as zero, got %+v", v)
	}
}

func TestEvalKeepsExplicitZeroDistinctFromAbsent(t *testing.T) {
	zero := 0.0
	n := NutritionRecord{Food: "Water", SugarsG: &zero}

	// evaluation sees the same zero either way
	if n.Eval().Sugars != 0 {
		t.Fatalf("explicit zero should evaluate as zero")
	}
	// but the record still knows sugars was reported while sodium was not
	if n.SugarsG == nil {
		t.Errorf("explicit zero must stay present on the record")
	}
	if n.SodiumMg != nil {
		t.Errorf("unreported sodium must stay absent on the record")
	}
}
