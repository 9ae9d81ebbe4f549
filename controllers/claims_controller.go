package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/lifesure/backend/dto"
	"github.com/lifesure/backend/models"
	"github.com/lifesure/backend/utils"
)

type ClaimAccessor interface {
	Create(ctx context.Context, claim models.Claim) (bson.ObjectID, error)
}

// POST /claims — inserts the request as-is. The claimable-bookings listing is
// the only eligibility check; nothing re-verifies it here.
func CreateClaim(claims ClaimAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateClaimDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		claim := models.Claim{
			UserEmail:      utils.NormalizeEmail(body.UserEmail),
			PolicyID:       models.PolicyRef(body.PolicyID),
			PolicyTitle:    body.PolicyTitle,
			Reason:         body.Reason,
			Status:         "pending",
			MonthlyPremium: body.MonthlyPremium,
			CreatedAt:      time.Now().UTC(),
		}

		id, err := claims.Create(c.Request.Context(), claim)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": id})
	}
}

// GET /claimable-bookings?email=... — the user's active bookings, joined to
// their policies, in the shape the claim page renders.
func GetClaimableBookings(bookings BookingAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		claimable, err := bookings.ActiveClaimable(c.Request.Context(), utils.NormalizeEmail(email))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, claimable)
	}
}
