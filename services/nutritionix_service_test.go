package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aishwaryacr5/Taste-perception/models"
)

func testNutritionix(url string) *NutritionixService {
	return &NutritionixService{
		appID:  "test-app",
		apiKey: "test-key",
		url:    url,
		client: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestLookupNutritionParsesFirstFood(t *testing.T) {
	var gotAppID, gotAppKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAppID = r.Header.Get("x-app-id")
		gotAppKey = r.Header.Get("x-app-key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"foods": [
				{
					"food_name": "hamburger sandwich",
					"nf_calories": 540.5,
					"nf_protein": 25,
					"nf_sugars": null,
					"nf_sodium": 1040,
					"nf_total_fat": 27,
					"nf_cholesterol": 122,
					"nf_potassium": null,
					"nf_total_carbohydrate": 40
				},
				{"food_name": "ignored second item", "nf_calories": 1}
			]
		}`))
	}))
	defer srv.Close()

	n, err := testNutritionix(srv.URL).LookupNutrition("hamburger")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if gotAppID != "test-app" || gotAppKey != "test-key" {
		t.Errorf("credentials not sent: app-id=%q app-key=%q", gotAppID, gotAppKey)
	}
	if n.Food != "Hamburger Sandwich" {
		t.Errorf("expected title-cased name, got %q", n.Food)
	}
	if n.Calories == nil || *n.Calories != 540.5 {
		t.Errorf("unexpected calories %v", n.Calories)
	}
	// null sugars becomes an explicit zero
	if n.SugarsG == nil || *n.SugarsG != 0 {
		t.Errorf("null sugars should coerce to explicit 0, got %v", n.SugarsG)
	}
	// other null fields stay absent
	if n.PotassiumMg != nil {
		t.Errorf("null potassium should stay absent, got %v", *n.PotassiumMg)
	}
	if n.SodiumMg == nil || *n.SodiumMg != 1040 {
		t.Errorf("unexpected sodium %v", n.SodiumMg)
	}
}

func TestLookupNutritionEmptyFoods(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": []}`))
	}))
	defer srv.Close()

	_, err := testNutritionix(srv.URL).LookupNutrition("nonsense")
	if !errors.Is(err, models.ErrLookupEmpty) {
		t.Fatalf("expected ErrLookupEmpty, got %v", err)
	}
}

func TestLookupNutritionNotFoundStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "We couldn't match any of your foods"}`))
	}))
	defer srv.Close()

	_, err := testNutritionix(srv.URL).LookupNutrition("xyzzy")
	if !errors.Is(err, models.ErrLookupEmpty) {
		t.Fatalf("expected ErrLookupEmpty on 404, got %v", err)
	}
}

func TestLookupNutritionUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid credentials"}`))
	}))
	defer srv.Close()

	_, err := testNutritionix(srv.URL).LookupNutrition("apple")
	if err == nil {
		t.Fatalf("expected an error on non-200 status")
	}
	if errors.Is(err, models.ErrLookupEmpty) {
		t.Errorf("auth failure must not look like an empty lookup")
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"hamburger":          "Hamburger",
		"chicken tikka":      "Chicken Tikka",
		"PEANUT BUTTER":      "Peanut Butter",
		"  spaced   words  ": "Spaced Words",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
