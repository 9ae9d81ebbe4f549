package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/lifesure/backend/dto"
	"github.com/lifesure/backend/models"
	"github.com/lifesure/backend/store"
	"github.com/lifesure/backend/utils"
)

type UserAccessor interface {
	UpsertOnLogin(ctx context.Context, email, name, photoURL string) (created bool, err error)
	List(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, id bson.ObjectID, role models.Role) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// POST /users and PUT /users — upsert on login. First login creates the
// record with the customer role; every login refreshes lastLoginAt.
func UpsertUser(users UserAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginUserDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := utils.NormalizeEmail(body.Email)
		created, err := users.UpsertOnLogin(c.Request.Context(), email, body.Name, body.PhotoURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, gin.H{"email": email, "created": created})
	}
}

// GET /users
func GetUsers(users UserAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := users.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// PATCH /users/:id/role — an invalid role is rejected before the store is
// touched. "No such user" and "already that role" are reported differently.
func UpdateUserRole(users UserAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		var body dto.UpdateRoleDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		role := models.Role(strings.ToLower(strings.TrimSpace(body.Role)))
		if !models.ValidRole(role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be admin, agent or customer"})
			return
		}

		switch err := users.UpdateRole(c.Request.Context(), id, role); err {
		case nil:
			c.JSON(http.StatusOK, gin.H{"ok": true, "changed": true})
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case store.ErrUnchanged:
			c.JSON(http.StatusOK, gin.H{"ok": true, "changed": false, "message": "user already has this role"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

// DELETE /users/:id
func DeleteUser(users UserAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		err = users.Delete(c.Request.Context(), id)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
