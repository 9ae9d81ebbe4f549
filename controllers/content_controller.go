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

type ContentAccessor interface {
	CreateReview(ctx context.Context, review models.Review) (bson.ObjectID, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
	CreateBlog(ctx context.Context, blog models.Blog) (bson.ObjectID, error)
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	LatestBlogs(ctx context.Context, limit int) ([]models.Blog, error)
	GetBlogByID(ctx context.Context, id bson.ObjectID) (*models.Blog, error)
	CreateSubscription(ctx context.Context, sub models.Subscription) (bson.ObjectID, error)
	CreateAgentApplication(ctx context.Context, app models.AgentApplication) (bson.ObjectID, error)
	ListAgentApplications(ctx context.Context) ([]models.AgentApplication, error)
}

// POST /reviews
func CreateReview(content ContentAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateReviewDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		review := models.Review{
			UserEmail: utils.NormalizeEmail(body.UserEmail),
			UserName:  body.UserName,
			UserPhoto: body.UserPhoto,
			Rating:    body.Rating,
			Message:   body.Message,
			CreatedAt: time.Now().UTC(),
		}

		id, err := content.CreateReview(c.Request.Context(), review)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"insertedId": id})
	}
}

// GET /reviews
func GetReviews(content ContentAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := content.ListReviews(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /blogs
func CreateBlog(content ContentAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateBlogDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		blog := models.Blog{
			Title:       body.Title,
			Author:      body.Author,
			AuthorEmail: body.AuthorEmail,
			Content:     body.Content,
			ImageURL:    body.ImageURL,
			CreatedAt:   time.Now().UTC(),
		}

		id, err := content.CreateBlog(c.Request.Context(), blog)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"insertedId": id})
	}
}

// GET /all-blogs
func GetAllBlogs(content ContentAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := content.ListBlogs(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, blogs)
	}
}

// GET /blogs — the first four posts, for the home page.
func GetLatestBlogs(content ContentAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := content.LatestBlogs(c.Request.Context(), 4)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, blogs)
	}
}

// GET /blogs/details/:id
func GetBlogDetails(content ContentAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
			return
		}

		blog, err := content.GetBlogByID(c.Request.Context(), id)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// POST /subscription
func CreateSubscription(content ContentAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateSubscriptionDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sub := models.Subscription{
			Email:     utils.NormalizeEmail(body.Email),
			Name:      body.Name,
			CreatedAt: time.Now().UTC(),
		}

		id, err := content.CreateSubscription(c.Request.Context(), sub)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already subscribed", "field": "email"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"insertedId": id})
	}
}

// POST /agent-applications
func CreateAgentApplication(content ContentAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateAgentApplicationDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app := models.AgentApplication{
			UserEmail:  utils.NormalizeEmail(body.UserEmail),
			UserName:   body.UserName,
			Experience: body.Experience,
			Specialty:  body.Specialty,
			Status:     models.AgentApplicationPending,
			CreatedAt:  time.Now().UTC(),
		}

		id, err := content.CreateAgentApplication(c.Request.Context(), app)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"insertedId": id})
	}
}

// GET /agent-applications
func GetAgentApplications(content ContentAccessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		apps, err := content.ListAgentApplications(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, apps)
	}
}
