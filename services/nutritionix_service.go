package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/aishwaryacr5/Taste-perception/models"
)

const nutritionixURL = "https://trackapi.nutritionix.com/v2/natural/nutrients"

type NutritionixService struct {
	appID  string
	apiKey string
	url    string
	client *http.Client
}

// NewNutritionixService initializes the NutritionixService with credentials and HTTP client
func NewNutritionixService() *NutritionixService {
	return &NutritionixService{
		appID:  os.Getenv("NUTRITIONIX_APP_ID"),
		apiKey: os.Getenv("NUTRITIONIX_API_KEY"),
		url:    nutritionixURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// LookupNutrition calls the Nutritionix natural-language nutrients endpoint
type naturalNutrientsResponse struct {
	Foods []struct {
		FoodName            string   `json:"food_name"`
		NfCalories          *float64 `json:"nf_calories"`
		NfProtein           *float64 `json:"nf_protein"`
		NfSugars            *float64 `json:"nf_sugars"`
		NfSodium            *float64 `json:"nf_sodium"`
		NfTotalFat          *float64 `json:"nf_total_fat"`
		NfCholesterol       *float64 `json:"nf_cholesterol"`
		NfPotassium         *float64 `json:"nf_potassium"`
		NfTotalCarbohydrate *float64 `json:"nf_total_carbohydrate"`
	} `json:"foods"`
}

// LookupNutrition resolves a food name to a NutritionRecord. The first
// matching food item wins, its name is title-cased for display, and a null
// sugars value comes back as an explicit 0; every other null field stays
// absent. Returns models.ErrLookupEmpty when no food matched.
func (s *NutritionixService) LookupNutrition(foodName string) (*models.NutritionRecord, error) {
	payload := map[string]any{
		"query":    foodName,
		"timezone": "US/Eastern",
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nutrition payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("x-app-id", s.appID)
	req.Header.Set("x-app-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Nutritionix API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrLookupEmpty
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutritionix API error %d: %s", resp.StatusCode, string(body))
	}

	var nr naturalNutrientsResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}
	if len(nr.Foods) == 0 {
		return nil, models.ErrLookupEmpty
	}

	food := nr.Foods[0]
	sugars := food.NfSugars
	if sugars == nil {
		zero := 0.0
		sugars = &zero
	}
	return &models.NutritionRecord{
		Food:          titleCase(food.FoodName),
		Calories:      food.NfCalories,
		ProteinG:      food.NfProtein,
		SugarsG:       sugars,
		SodiumMg:      food.NfSodium,
		TotalFatG:     food.NfTotalFat,
		CholesterolMg: food.NfCholesterol,
		PotassiumMg:   food.NfPotassium,
		TotalCarbsG:   food.NfTotalCarbohydrate,
	}, nil
}

// titleCase upper-cases the first letter of each word for display
// ("hamburger sandwich" → "Hamburger Sandwich").
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
