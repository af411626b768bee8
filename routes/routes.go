package routes

import (
	"github.com/aishwaryacr5/Taste-perception/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Analyze Food view
	food := r.Group("/food")
	{
		food.POST("/recognize", controllers.RecognizeFood)
		food.POST("/analyze", controllers.AnalyzeFood)
	}
	r.POST("/prompt", controllers.GenerateResponse)

	// Give Feedback view
	feedback := r.Group("/feedback")
	{
		feedback.POST("", controllers.SubmitFeedback)
		feedback.GET("", controllers.ListFeedback)
		feedback.GET("/summary", controllers.FeedbackSummary)
	}

	return r
}
