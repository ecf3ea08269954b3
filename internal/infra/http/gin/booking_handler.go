package ginserver

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	bookingapp "adventurestay/internal/app/handlers/booking"
	domainbooking "adventurestay/internal/domain/booking"
	domainpackages "adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/pricing"
)

type BookingHandler struct {
	CreateBooking *bookingapp.CreateHandler
	GetBooking    *bookingapp.GetHandler
	Logger        *slog.Logger
}

type createBookingRequest struct {
	PackageCode string `json:"package_code" validate:"required"`
	GuestName   string `json:"guest_name" validate:"required,max=255"`
	GuestEmail  string `json:"guest_email" validate:"required,email"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Guests      int    `json:"num_guests" validate:"required,min=1"`
}

func (h BookingHandler) Create(c *gin.Context) {
	if h.CreateBooking == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "booking unavailable"})
		return
	}
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}

	result, err := h.CreateBooking.Handle(c.Request.Context(), bookingapp.CreateCommand{
		PackageCode: req.PackageCode,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		StartDate:   start,
		EndDate:     end,
		Guests:      req.Guests,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h BookingHandler) Get(c *gin.Context) {
	if h.GetBooking == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "booking unavailable"})
		return
	}
	view, err := h.GetBooking.Handle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h BookingHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainbooking.ErrInvalidDateRange),
		errors.Is(err, domainbooking.ErrInvalidGuestCount):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domainbooking.ErrPackageNotAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainpackages.ErrPackageNotFound),
		errors.Is(err, domainbooking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, pricing.ErrRateNotConfigured):
		// data fault, not user error: log it and keep the body generic
		if h.Logger != nil {
			h.Logger.Error("package rate misconfigured", "error", err, "request_id", c.GetString("request_id"))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		if h.Logger != nil {
			h.Logger.Error("booking request failed", "error", err, "request_id", c.GetString("request_id"))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

var _ BookingHTTP = BookingHandler{}
