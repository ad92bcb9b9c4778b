package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

type createOrderRequest struct {
	ProductID     string `json:"productId"`
	UserName      string `json:"userName"`
	UserMobile    string `json:"userMobile"`
	CustomDetails string `json:"customDetails"`
	IsCustom      bool   `json:"isCustom"`
}

var (
	errContactRequired = errors.New("Name and mobile number are required")
	errProductRequired = errors.New("Product is required")
	errBadProductID    = errors.New("Product not found")
)

// validateOrderRequest enforces the intake contract: contact fields always,
// productId only for standard orders. Custom orders skip the product branch
// entirely, even when a productId is present.
func validateOrderRequest(req createOrderRequest) (*primitive.ObjectID, error) {
	if strings.TrimSpace(req.UserName) == "" || strings.TrimSpace(req.UserMobile) == "" {
		return nil, errContactRequired
	}

	if req.IsCustom {
		return nil, nil
	}

	raw := strings.TrimSpace(req.ProductID)
	if raw == "" {
		return nil, errProductRequired
	}

	productID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, errBadProductID
	}
	return &productID, nil
}

// CreateOrder is the public, unauthenticated intake endpoint. Standard orders
// snapshot the product's current name; the check-then-insert is deliberately
// not transactional, a dangling reference is tolerated by the data model.
func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		productID, err := validateOrderRequest(req)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, errBadProductID) {
				status = http.StatusNotFound
			}
			respondWithError(c, status, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		order := models.Order{
			UserName:   strings.TrimSpace(req.UserName),
			UserMobile: strings.TrimSpace(req.UserMobile),
			IsCustom:   req.IsCustom,
			CreatedAt:  time.Now(),
		}

		if req.IsCustom {
			order.CustomDetails = strings.TrimSpace(req.CustomDetails)
		} else {
			var product models.Product
			err := db.Collection("products").FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "Product not found")
				return
			}
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}

			order.ProductID = productID
			order.ProductName = product.Name
		}

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		order.ID = res.InsertedID.(primitive.ObjectID)

		if order.IsCustom {
			log.Println("[ORDER] [INFO] custom order created:", order.ID.Hex())
		} else {
			log.Println("[ORDER] [INFO] order created:", order.ID.Hex(), "product:", order.ProductName)
		}
		c.JSON(http.StatusCreated, order)
	}
}

// ListOrders returns every order, newest first.
func ListOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Orders could not be fetched"})
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// DeleteOrder hard-deletes an order.
func DeleteOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("orders").DeleteOne(ctx, bson.M{"_id": orderID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}
