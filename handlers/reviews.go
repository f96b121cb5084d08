package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripway/models"
	"tripway/services/review"
	"tripway/utils"
)

// ReviewsHandler serves the public reviews views.
type ReviewsHandler struct {
	Reviews review.ReviewService
}

// List renders all reviews across packages.
func (h *ReviewsHandler) List(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "ListReviews"))

	reviews, err := h.Reviews.GetAllReviews(c.Request.Context())
	if err != nil {
		logger.Warn("failed to load reviews", zap.Error(err))
		c.JSON(http.StatusOK, page(c, gin.H{
			"reviews": []models.Review{},
			"error":   err.Error(),
		}))
		return
	}
	c.JSON(http.StatusOK, page(c, gin.H{"reviews": reviews}))
}

// ForPackage renders the reviews of one package.
func (h *ReviewsHandler) ForPackage(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid package id"})
		return
	}

	reviews, err := h.Reviews.GetPackageReviews(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
