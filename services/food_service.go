package services

import (
	"strings"

	"github.com/aishwaryacr5/Taste-perception/config"
	"github.com/aishwaryacr5/Taste-perception/models"
	"github.com/aishwaryacr5/Taste-perception/utils"
)

type FoodService struct {
	nutri *NutritionixService
	rek   *RekognitionService
	gem   *GeminiService
}

func NewFoodService(nutri *NutritionixService, rek *RekognitionService, gem *GeminiService) *FoodService {
	return &FoodService{nutri: nutri, rek: rek, gem: gem}
}

// AnalysisResult bundles everything the analyze view renders.
type AnalysisResult struct {
	Nutrition       *models.NutritionRecord `json:"nutrition"`
	HealthGoals     models.HealthGoalFlags  `json:"health_goals"`
	Advice          []utils.Advisory        `json:"advice"`
	MealSuggestions string                  `json:"meal_suggestions,omitempty"`
}

// Recognize via image → returns the detected food name
func (s *FoodService) Recognize(base64Img string) (string, error) {
	return s.rek.DetectFoodName(base64Img)
}

// Analyze resolves a food name to nutrition facts, derives health goals from
// the prompt, runs the advice rules, and (when the user said anything) asks
// for meal suggestions. Every successful lookup is recorded in the Postgres
// food catalog.
func (s *FoodService) Analyze(foodName, prompt string) (*AnalysisResult, error) {
	nutrition, err := s.nutri.LookupNutrition(foodName)
	if err != nil {
		return nil, err
	}
	s.recordLookup(foodName, nutrition)

	goals := utils.ExtractHealthGoals(prompt)
	result := &AnalysisResult{
		Nutrition:   nutrition,
		HealthGoals: goals,
		Advice:      utils.AdviseFood(*nutrition, goals),
	}

	if strings.TrimSpace(prompt) != "" {
		suggestions, err := s.gem.MealSuggestions(nutrition, prompt)
		if err != nil {
			return nil, err
		}
		result.MealSuggestions = suggestions
	}
	return result, nil
}

// recordLookup upserts the catalog row for this food and bumps its counter.
func (s *FoodService) recordLookup(query string, n *models.NutritionRecord) {
	var item models.FoodItem
	calories := n.Eval().Calories
	err := config.DB.Where("label = ?", n.Food).First(&item).Error
	if err != nil {
		config.DB.Create(&models.FoodItem{Query: query, Label: n.Food, Calories: calories})
		return
	}
	config.DB.Model(&item).Updates(map[string]any{
		"query":    query,
		"calories": calories,
		"lookups":  item.Lookups + 1,
	})
}
