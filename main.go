package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/mailer"
	"backend/internal/middleware"
	"backend/internal/storage"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}

	mail := mailer.NewSendGrid(config.AppEnv.SendGridAPIKey, config.AppEnv.MailFrom)

	uploads, err := storage.NewCloudinary(config.AppEnv.CloudinaryURL)
	if err != nil {
		log.Fatal("cloudinary init failed:", err)
	}

	protect := middleware.Protect(config.AppEnv.JWTSecret)
	adminOnly := middleware.AdminOnly(db)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.String(200, "API is running...")
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", handlers.Register(db, mail, config.AppEnv.ClientURL))
		auth.GET("/verify/:token", handlers.VerifyEmail(db))
		auth.POST("/login", handlers.Login(db, config.AppEnv.JWTSecret, config.AppEnv.TokenTTL))
		auth.GET("/profile", protect, handlers.GetProfile(db))
	}

	products := r.Group("/api/products")
	{
		products.GET("", handlers.ListProducts(db))
		products.GET("/:id", handlers.GetProduct(db))
		products.POST("", protect, adminOnly, handlers.CreateProduct(db, uploads))
		products.PUT("/:id", protect, adminOnly, handlers.UpdateProduct(db, uploads))
		products.DELETE("/:id", protect, adminOnly, handlers.DeleteProduct(db))
	}

	orders := r.Group("/api/orders")
	{
		orders.POST("", handlers.CreateOrder(db))
		orders.GET("", protect, adminOnly, handlers.ListOrders(db))
		orders.DELETE("/:id", protect, adminOnly, handlers.DeleteOrder(db))
	}

	upload := r.Group("/api/upload", protect, adminOnly)
	{
		upload.POST("/single", handlers.UploadSingle(uploads))
		upload.POST("/multiple", handlers.UploadMultiple(uploads))
	}

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
