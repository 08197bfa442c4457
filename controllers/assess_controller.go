package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"safex/config"
	"safex/locale"
	"safex/models"
	"safex/services"

	"github.com/gin-gonic/gin"
)

type AssessRequest struct {
	Product  models.ProductRecord `json:"product"`
	Language string               `json:"language"`
	Explain  bool                 `json:"explain"`
}

type AssessResponse struct {
	Score       int    `json:"score"`
	Tier        string `json:"tier"`
	Explanation string `json:"explanation,omitempty"`
}

// NewAssessHandler scores a submitted product record over plain HTTP,
// bypassing the conversational flow. With explain=true it also asks the
// generative backend for a rationale; a backend failure degrades to an empty
// explanation, it never fails the request.
func NewAssessHandler(cfg *config.Config) gin.HandlerFunc {
	explainTimeout := time.Duration(cfg.Explain.TimeoutSeconds) * time.Second

	return func(c *gin.Context) {
		var req AssessRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		rec := req.Product
		rec.Complete()
		score, tier := services.ScoreProduct(rec)

		resp := AssessResponse{Score: score, Tier: string(tier)}
		if req.Explain {
			ctx, cancel := context.WithTimeout(c.Request.Context(), explainTimeout)
			defer cancel()
			explanation, err := services.GenerateExplanation(ctx, rec, tier, locale.ParseLanguage(req.Language))
			if err != nil {
				log.Printf("assess: explanation failed: %v", err)
			} else {
				resp.Explanation = explanation
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}
