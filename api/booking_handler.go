package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fixora/fixora-backend/auth"
	bk "github.com/fixora/fixora-backend/booking"
)

type BookingService interface {
	CreateBooking(ctx context.Context, actor auth.Principal, booking bk.Booking) (bk.Booking, error)
	ListBookings(ctx context.Context, actor auth.Principal) ([]bk.Booking, error)
	AvailableJobs(ctx context.Context) ([]bk.AvailableJob, error)
	AcceptJob(ctx context.Context, id string, actor auth.Principal) (bk.Booking, error)
	CompleteJob(ctx context.Context, id string, actor auth.Principal) (bk.Booking, error)
	CancelBooking(ctx context.Context, id string, actor auth.Principal) (bk.Booking, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	customerOnly := CustomerOnly()
	workerOnly := WorkerOnly()

	rg.POST("", customerOnly, h.Create)
	rg.GET("", h.List)
	rg.GET("/available", workerOnly, h.Available)
	rg.PATCH("/:id/accept", workerOnly, h.Accept)
	rg.PATCH("/:id/complete", workerOnly, h.Complete)
	rg.PATCH("/:id/cancel", customerOnly, h.Cancel)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var booking bk.Booking

	if err := c.BindJSON(&booking); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), CurrentPrincipal(c), booking)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "all required fields must be provided",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create booking",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), CurrentPrincipal(c))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
		return
	}

	if bookings == nil {
		bookings = []bk.Booking{}
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Available(c *gin.Context) {
	jobs, err := h.service.AvailableJobs(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve available jobs",
		})
		return
	}

	if jobs == nil {
		jobs = []bk.AvailableJob{}
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *BookingHandler) Accept(c *gin.Context) {
	id := c.Param("id")

	booking, err := h.service.AcceptJob(c.Request.Context(), id, CurrentPrincipal(c))

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, bk.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, bk.ErrJobTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "job is no longer available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept job"})
		}

		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id := c.Param("id")

	booking, err := h.service.CompleteJob(c.Request.Context(), id, CurrentPrincipal(c))

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, bk.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, bk.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to complete this job"})
		case errors.Is(err, bk.ErrInvalidBookingState):
			c.JSON(http.StatusBadRequest, gin.H{"error": "only confirmed jobs can be marked complete"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete job"})
		}

		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	booking, err := h.service.CancelBooking(c.Request.Context(), id, CurrentPrincipal(c))

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, bk.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, bk.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to cancel this booking"})
		case errors.Is(err, bk.ErrInvalidBookingState):
			c.JSON(http.StatusBadRequest, gin.H{"error": "only pending bookings can be cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		}

		return
	}

	c.JSON(http.StatusOK, booking)
}
