package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driveshare/car-rental-backend/auth"
	bk "github.com/driveshare/car-rental-backend/booking"
	rv "github.com/driveshare/car-rental-backend/review"
)

type ReviewService interface {
	FindByBookingID(ctx context.Context, bookingID string) (rv.Review, error)
	CreateReview(ctx context.Context, actor auth.Context, bookingID string, rating int, comment string) (rv.Review, error)
}

type ReviewHandler struct {
	service ReviewService
}

func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/:id/review", h.GetByBookingID)
	rg.POST("/:id/review", h.Create)
}

type reviewRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) GetByBookingID(c *gin.Context) {
	bookingID := c.Param("id")

	review, err := h.service.FindByBookingID(c.Request.Context(), bookingID)

	if err != nil {
		writeReviewError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, review)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	bookingID := c.Param("id")

	var req reviewRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be an integer between 1 and 5"})
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), actorFrom(c), bookingID, req.Rating, req.Comment)

	if err != nil {
		writeReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func writeReviewError(c *gin.Context, err error) {
	c.Error(err)

	switch {
	case errors.Is(err, rv.ErrReviewNotFound), errors.Is(err, bk.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, rv.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, rv.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, rv.ErrReviewExists),
		errors.Is(err, rv.ErrBookingNotAccepted),
		errors.Is(err, rv.ErrBookingNotFinished):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
