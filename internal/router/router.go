package router

import (
	"OpenSAT-Quiz-Backend/internal/api"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(quizHandler *api.QuizHandler, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	r.Use(cors.New(config))

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "UP"})
		})
		apiV1.GET("/catalog", quizHandler.CatalogHandler)
		apiV1.GET("/daily", quizHandler.DailyQuestionHandler)
		apiV1.GET("/sections", quizHandler.ListSectionsHandler)

		sections := apiV1.Group("/sections/:section")
		{
			sections.GET("/domains", quizHandler.ListDomainsHandler)
			sections.GET("/ordinals", quizHandler.ListOrdinalsHandler)
			sections.GET("/random", quizHandler.RandomQuestionHandler)
			sections.GET("/questions/:ordinal", quizHandler.GetQuestionHandler)
			sections.POST("/questions/:ordinal/answer", quizHandler.SubmitAnswerHandler)
		}
	}

	return r
}
