package controllers

import (
	"errors"
	"net/http"

	"github.com/aishwaryacr5/Taste-perception/config"
	"github.com/aishwaryacr5/Taste-perception/models"
	"github.com/aishwaryacr5/Taste-perception/services"
	"github.com/aishwaryacr5/Taste-perception/storage"
	"github.com/gin-gonic/gin"
)

func newFeedbackService() *services.FeedbackService {
	return services.NewFeedbackService(storage.NewFeedbackCSV(config.FeedbackFilePath()))
}

// POST /feedback  { "name": "...", "age": 30, "satisfaction": 8, "comment": "..." }
func SubmitFeedback(c *gin.Context) {
	var req struct {
		Name         string `json:"name"`
		Age          int    `json:"age"`
		Satisfaction int    `json:"satisfaction"`
		Comment      string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	entry, err := newFeedbackService().Submit(req.Name, req.Age, req.Satisfaction, req.Comment)
	if err != nil {
		if errors.Is(err, models.ErrInputMissing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thanks for your feedback!", "sentiment": entry.Sentiment})
}

// GET /feedback/summary
func FeedbackSummary(c *gin.Context) {
	counts, err := newFeedbackService().Summary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(counts) == 0 {
		c.JSON(http.StatusOK, gin.H{"counts": counts, "message": "No feedback available yet."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

// GET /feedback
func ListFeedback(c *gin.Context) {
	entries, err := newFeedbackService().History()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
