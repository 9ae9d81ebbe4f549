package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lifesure/backend/controllers"
	"github.com/lifesure/backend/database"
	"github.com/lifesure/backend/payments"
	"github.com/lifesure/backend/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	ctx := context.Background()
	client, err := database.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	db := database.NewStore(client)
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}

	policies := store.NewPolicyStore(db.Policies)
	bookings := store.NewBookingStore(db.Bookings)
	users := store.NewUserStore(db.Users)
	claims := store.NewClaimStore(db.Claims)
	paymentStore := store.NewPaymentStore(db.Bookings, db.Transactions)
	content := store.NewContentStore(db.Reviews, db.Blogs, db.Subscriptions, db.AgentApplications)
	gateway := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))

	r := gin.New()
	r.Use(corsMiddleware())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "LifeSure insurance server is running")
	})

	// Every route below is publicly callable. There is no auth layer in this
	// service; see DESIGN.md.
	r.POST("/users", controllers.UpsertUser(users))
	r.PUT("/users", controllers.UpsertUser(users))
	r.GET("/users", controllers.GetUsers(users))
	r.PATCH("/users/:id/role", controllers.UpdateUserRole(users))
	r.DELETE("/users/:id", controllers.DeleteUser(users))

	r.POST("/policies", controllers.CreatePolicy(policies))
	r.GET("/policies", controllers.GetPolicies(policies))
	r.GET("/policies/:id", controllers.GetPolicy(policies))
	r.PATCH("/policies/:id", controllers.UpdatePolicy(policies))
	r.DELETE("/policies/:id", controllers.DeletePolicy(policies))

	r.POST("/booking-policy", controllers.CreateBooking(bookings))
	r.PATCH("/booking-policy/:id/status", controllers.UpdateBookingStatus(bookings))
	r.GET("/booking-availability", controllers.CheckBookingAvailability(bookings))
	r.GET("/booked-policies", controllers.GetBookedPolicies(bookings))
	r.GET("/booked-policies/detail", controllers.GetBookedPolicyDetail(bookings))
	r.GET("/my-policies", controllers.GetMyPolicies(bookings))
	r.GET("/top-policies", controllers.GetTopPolicies(bookings))

	r.POST("/claims", controllers.CreateClaim(claims))
	r.GET("/claimable-bookings", controllers.GetClaimableBookings(bookings))

	r.POST("/create-payment-intent", controllers.CreatePaymentIntent(gateway))
	r.POST("/payment-success", controllers.ConfirmPaymentSuccess(paymentStore))
	r.GET("/transactions", controllers.GetTransactions(paymentStore))

	r.POST("/reviews", controllers.CreateReview(content))
	r.GET("/reviews", controllers.GetReviews(content))
	r.POST("/blogs", controllers.CreateBlog(content))
	r.GET("/all-blogs", controllers.GetAllBlogs(content))
	r.GET("/blogs", controllers.GetLatestBlogs(content))
	r.GET("/blogs/details/:id", controllers.GetBlogDetails(content))
	r.POST("/subscription", controllers.CreateSubscription(content))
	r.POST("/agent-applications", controllers.CreateAgentApplication(content))
	r.GET("/agent-applications", controllers.GetAgentApplications(content))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("Server is running on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}

	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOriginFunc = func(origin string) bool {
			return allowedOrigins[origin]
		}
	}
	return cors.New(cfg)
}
