package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/lifesure/backend/dto"
	"github.com/lifesure/backend/models"
	"github.com/lifesure/backend/store"
	"github.com/lifesure/backend/utils"
)

type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount float64) (clientSecret string, err error)
}

type PaymentAccessor interface {
	FindBookingByRef(ctx context.Context, ref models.PolicyRef) (*models.Booking, error)
	MarkBookingPaid(ctx context.Context, ref models.PolicyRef, nextPaymentDate time.Time) error
	AppendTransaction(ctx context.Context, tx models.Transaction) (bson.ObjectID, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}

// POST /create-payment-intent
func CreatePaymentIntent(gateway PaymentGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreatePaymentIntentDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		secret, err := gateway.CreateIntent(c.Request.Context(), body.Amount)
		if err != nil {
			log.Println("create payment intent:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
	}
}

// POST /payment-success — marks the booking paid and appends the transaction
// record. The two writes are not wrapped in a transaction and the callback is
// not deduplicated: a replay appends a second record. Known hazard, kept.
func ConfirmPaymentSuccess(payments PaymentAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.PaymentSuccessDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ref := models.PolicyRef(body.OrderID)
		if _, err := payments.FindBookingByRef(c.Request.Context(), ref); err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		now := time.Now().UTC()
		nextDue := utils.NextPaymentDate(now)

		err := payments.MarkBookingPaid(c.Request.Context(), ref, nextDue)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		tx := models.Transaction{
			OrderID:         ref,
			UserEmail:       utils.NormalizeEmail(body.Email),
			Amount:          body.Amount,
			TransactionID:   body.TransactionID,
			PaymentMethod:   body.PaymentMethod,
			CreatedAt:       now,
			NextPaymentDate: nextDue,
		}

		id, err := payments.AppendTransaction(c.Request.Context(), tx)
		if err != nil {
			// Booking is already marked paid at this point; the record is
			// simply missing. Surfaced, not rolled back.
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"insertedId": id, "nextPaymentDate": nextDue})
	}
}

// GET /transactions
func GetTransactions(payments PaymentAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		txs, err := payments.ListTransactions(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, txs)
	}
}
