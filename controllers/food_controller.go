package controllers

import (
	"errors"
	"net/http"

	"github.com/aishwaryacr5/Taste-perception/models"
	"github.com/aishwaryacr5/Taste-perception/services"
	"github.com/aishwaryacr5/Taste-perception/utils"
	"github.com/gin-gonic/gin"
)

func newFoodService() (*services.FoodService, error) {
	rek, err := services.NewRekognitionService()
	if err != nil {
		return nil, err
	}
	return services.NewFoodService(
		services.NewNutritionixService(),
		rek,
		services.NewGeminiService(),
	), nil
}

// POST /food/recognize  { "image_base64": "data:…" }
func RecognizeFood(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	imageURL, err := utils.UploadFoodImage(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed", "detail": err.Error()})
		return
	}

	foodSvc, err := newFoodService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	foodName, err := foodSvc.Recognize(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"food_name": foodName, "image_url": imageURL})
}

// POST /food/analyze  { "food_name": "hamburger", "prompt": "I have diabetes" }
func AnalyzeFood(c *gin.Context) {
	var req struct {
		FoodName string `json:"food_name" binding:"required"`
		Prompt   string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	foodSvc, err := newFoodService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out, err := foodSvc.Analyze(req.FoodName, req.Prompt)
	if err != nil {
		if errors.Is(err, models.ErrLookupEmpty) {
			// no retry: the user should try another image or a more specific name
			c.JSON(http.StatusNotFound, gin.H{"error": models.ErrLookupEmpty.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /prompt  { "prompt": "suggest diabetic-friendly breakfasts" }
func GenerateResponse(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	text, err := services.NewGeminiService().Generate(req.Prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": text})
}
