package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/lifesure/backend/dto"
	"github.com/lifesure/backend/models"
	"github.com/lifesure/backend/store"
	"github.com/lifesure/backend/utils"
)

type BookingAccessor interface {
	Create(ctx context.Context, booking models.Booking) (bson.ObjectID, error)
	CheckAvailability(ctx context.Context, policyRef models.PolicyRef, email string) (bool, error)
	TopPolicies(ctx context.Context, limit int) ([]models.TopPolicy, error)
	AllWithPolicy(ctx context.Context) ([]models.BookingWithPolicy, error)
	DetailFor(ctx context.Context, email string, policyRef models.PolicyRef) (*models.BookingWithPolicy, error)
	MyPolicies(ctx context.Context, email string) ([]models.BookingWithPolicy, error)
	ActiveClaimable(ctx context.Context, email string) ([]models.ClaimableBooking, error)
	UpdateStatus(ctx context.Context, id bson.ObjectID, status string, feedback *string) error
}

// POST /booking-policy
func CreateBooking(bookings BookingAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateBookingDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ref := models.PolicyRef(body.BookingPolicyID)
		if _, err := ref.Resolve(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookingPolicyId"})
			return
		}

		status := body.Status
		if status == "" {
			status = "pending"
		}

		booking := models.Booking{
			BookingPolicyID: ref,
			UserEmail:       utils.NormalizeEmail(body.UserEmail),
			UserName:        body.UserName,
			Status:          status,
			PaymentStatus:   body.PaymentStatus,
			CreatedAt:       time.Now().UTC(),
		}

		id, err := bookings.Create(c.Request.Context(), booking)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": id})
	}
}

// GET /booking-availability?policyId=...&email=...
func CheckBookingAvailability(bookings BookingAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		policyID := c.Query("policyId")
		email := c.Query("email")
		if policyID == "" || email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "policyId and email are required"})
			return
		}

		booked, err := bookings.CheckAvailability(c.Request.Context(),
			models.PolicyRef(policyID), utils.NormalizeEmail(email))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"booked": booked})
	}
}

// GET /top-policies?limit=...
func GetTopPolicies(bookings BookingAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := utils.ParseIntDefault(c.Query("limit"), 6)
		if limit < 1 {
			limit = 6
		}

		top, err := bookings.TopPolicies(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}

		c.JSON(http.StatusOK, top)
	}
}

// GET /booked-policies — every booking joined to its policy.
func GetBookedPolicies(bookings BookingAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		joined, err := bookings.AllWithPolicy(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, joined)
	}
}

// GET /booked-policies/detail?email=...&policyId=...
func GetBookedPolicyDetail(bookings BookingAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		policyID := c.Query("policyId")
		if email == "" || policyID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and policyId are required"})
			return
		}

		detail, err := bookings.DetailFor(c.Request.Context(),
			utils.NormalizeEmail(email), models.PolicyRef(policyID))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, detail)
	}
}

// GET /my-policies?email=...
func GetMyPolicies(bookings BookingAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		joined, err := bookings.MyPolicies(c.Request.Context(), utils.NormalizeEmail(email))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, joined)
	}
}

// PATCH /booking-policy/:id/status
func UpdateBookingStatus(bookings BookingAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}

		var body dto.UpdateBookingStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		switch err := bookings.UpdateStatus(c.Request.Context(), id, body.Status, body.Feedback); err {
		case nil:
			c.JSON(http.StatusOK, gin.H{"ok": true, "changed": true})
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case store.ErrUnchanged:
			c.JSON(http.StatusOK, gin.H{"ok": true, "changed": false, "message": "booking already in this status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}
