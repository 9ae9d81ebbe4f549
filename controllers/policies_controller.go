package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/lifesure/backend/models"
	"github.com/lifesure/backend/store"
)

// PolicyAccessor is the slice of the policy store the handlers use.
type PolicyAccessor interface {
	Create(ctx context.Context, policy models.Policy) (bson.ObjectID, error)
	List(ctx context.Context) ([]models.Policy, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Policy, error)
	Update(ctx context.Context, id bson.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// POST /policies
func CreatePolicy(policies PolicyAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var policy models.Policy
		if err := c.ShouldBindJSON(&policy); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id, err := policies.Create(c.Request.Context(), policy)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": id})
	}
}

// GET /policies
func GetPolicies(policies PolicyAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := policies.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /policies/:id
func GetPolicy(policies PolicyAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid policy id"})
			return
		}

		policy, err := policies.GetByID(c.Request.Context(), id)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "policy not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, policy)
	}
}

// PATCH /policies/:id
func UpdatePolicy(policies PolicyAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid policy id"})
			return
		}

		// Partial merge of whatever fields the client sends; the id itself
		// is the only thing stripped out.
		var fields bson.M
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		delete(fields, "_id")
		delete(fields, "id")
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}

		err = policies.Update(c.Request.Context(), id, fields)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "policy not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// DELETE /policies/:id — deleting a missing policy is a no-op success.
func DeletePolicy(policies PolicyAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid policy id"})
			return
		}

		if err := policies.Delete(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
