// controllers/review_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/Ashish12122003/Menumate-backend/pkg/resp"
	"github.com/Ashish12122003/Menumate-backend/services"
	"github.com/Ashish12122003/Menumate-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

type CreateReviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// POST /api/orders/:orderId/review (Protected)
// Preconditions checked in order, each with its own failure: order exists,
// order belongs to the caller, order completed, no review yet.
func (ctl *ReviewController) Create(c *gin.Context) {
	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := ctl.Reviews.Create(utils.CurrentUserID(c), orderIDParam(c), req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotCompleted):
			resp.BadRequest(c, "You can only review completed orders.")
		case errors.Is(err, services.ErrDuplicateReview):
			resp.BadRequest(c, "You have already submitted a review for this order.")
		default:
			serviceError(c, err, "Order not found.")
		}
		return
	}

	resp.Created(c, "Thank you for your review!", review)
}

// GET /api/public/shops/:shopId/reviews (Public)
func (ctl *ReviewController) ListForShop(c *gin.Context) {
	out, err := ctl.Reviews.ListForShop(shopIDParam(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"count":         len(out.Reviews),
		"averageRating": out.AverageRating,
		"reviewCount":   out.ReviewCount,
		"data":          out.Reviews,
	})
}
