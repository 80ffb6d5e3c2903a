package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driveshare/car-rental-backend/auth"
	bk "github.com/driveshare/car-rental-backend/booking"
	"github.com/driveshare/car-rental-backend/car"
)

type BookingService interface {
	GetAllBookings(ctx context.Context) ([]bk.View, error)
	FindBookingByID(ctx context.Context, id string) (bk.View, error)
	CreateBooking(ctx context.Context, actor auth.Context, carID string, r bk.DateRange) (bk.View, error)
	UpdateBooking(ctx context.Context, actor auth.Context, id, carID string, r bk.DateRange) (bk.View, error)
	CancelBooking(ctx context.Context, actor auth.Context, id string) (bk.View, error)
	AcceptOrReject(ctx context.Context, actor auth.Context, id string, status bk.Status) (bk.View, error)
	GetUserHistory(ctx context.Context, actor auth.Context) ([]bk.View, error)
	GetOwnerHistory(ctx context.Context, actor auth.Context) ([]bk.View, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Cancel)
	rg.PUT("/:id/accept-or-reject", h.AcceptOrReject)

	rg.GET("/history/mine", RequireRole(auth.RoleUser), h.UserHistory)
	rg.GET("/history/owned", RequireRole(auth.RoleOwner), h.OwnerHistory)
}

type bookingRequest struct {
	CarID     string  `json:"carId" binding:"required"`
	StartDate bk.Date `json:"startDate" binding:"required"`
	EndDate   bk.Date `json:"endDate" binding:"required"`
}

type acceptOrRejectRequest struct {
	Status string `json:"status" binding:"required,bookingstatus"`
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.service.GetAllBookings(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve bookings"})
		return
	}

	if bookings == nil {
		bookings = []bk.View{}
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	view, err := h.service.FindBookingByID(c.Request.Context(), id)

	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, view)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req bookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	view, err := h.service.CreateBooking(
		c.Request.Context(),
		actorFrom(c),
		req.CarID,
		bk.DateRange{Start: req.StartDate, End: req.EndDate},
	)

	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req bookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	view, err := h.service.UpdateBooking(
		c.Request.Context(),
		actorFrom(c),
		id,
		req.CarID,
		bk.DateRange{Start: req.StartDate, End: req.EndDate},
	)

	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, view)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	view, err := h.service.CancelBooking(c.Request.Context(), actorFrom(c), id)

	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, view)
}

func (h *BookingHandler) AcceptOrReject(c *gin.Context) {
	id := c.Param("id")

	var req acceptOrRejectRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be Accepted or Rejected"})
		return
	}

	view, err := h.service.AcceptOrReject(c.Request.Context(), actorFrom(c), id, bk.Status(req.Status))

	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, view)
}

func (h *BookingHandler) UserHistory(c *gin.Context) {
	views, err := h.service.GetUserHistory(c.Request.Context(), actorFrom(c))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve booking history"})
		return
	}

	if views == nil {
		views = []bk.View{}
	}

	c.IndentedJSON(http.StatusOK, views)
}

func (h *BookingHandler) OwnerHistory(c *gin.Context) {
	views, err := h.service.GetOwnerHistory(c.Request.Context(), actorFrom(c))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve booking history"})
		return
	}

	if views == nil {
		views = []bk.View{}
	}

	c.IndentedJSON(http.StatusOK, views)
}

// writeBookingError maps the engine's sentinel errors onto HTTP statuses.
// Anything unknown becomes a generic 500 so store internals never cross the
// boundary.
func writeBookingError(c *gin.Context, err error) {
	c.Error(err)

	switch {
	case errors.Is(err, bk.ErrBookingNotFound), errors.Is(err, car.ErrCarNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrInvalidDateRange), errors.Is(err, bk.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrBookingConflict),
		errors.Is(err, bk.ErrInvalidBookingState),
		errors.Is(err, bk.ErrCarUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
