package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
	"backend/internal/storage"
)

// CreateProduct stores a new catalog item. The image is mandatory and is
// checked before any other field so a missing file always rejects the request.
func CreateProduct(db *mongo.Database, uploads storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "multipart/form-data required"})
			return
		}

		input, err := parseProductForm(c)
		if err != nil {
			log.Println("CreateProduct multipart error:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !input.ImageSet {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product image is required"})
			return
		}

		name := strings.TrimSpace(input.Name)
		if !input.NameSet || name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		if !input.PriceSet || input.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
			return
		}
		if input.CountInStockSet && input.CountInStock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "countInStock must be zero or greater"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("products").CountDocuments(ctx, bson.M{"name": name})
		if err != nil {
			log.Println("CreateProduct db error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product already exists"})
			return
		}

		imageURL, err := uploads.Upload(c.Request.Context(), input.Image)
		if err != nil {
			log.Println("CreateProduct image upload failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
			return
		}

		product := models.Product{
			Name:         name,
			Description:  strings.TrimSpace(input.Description),
			Price:        input.Price,
			CountInStock: input.CountInStock,
			ImageURL:     imageURL,
			Tags:         models.StringList(input.Tags),
			CreatedAt:    time.Now(),
		}

		res, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product already exists"})
				return
			}
			log.Println("CreateProduct insert error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		product.ID = res.InsertedID.(primitive.ObjectID)
		log.Println("CreateProduct insert success:", product.ID.Hex())
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct applies a partial update. Any omitted field, the image
// included, keeps its prior value.
func UpdateProduct(db *mongo.Database, uploads storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "multipart/form-data required"})
			return
		}

		input, err := parseProductForm(c)
		if err != nil {
			log.Println("UpdateProduct multipart error:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			log.Println("UpdateProduct find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		updateSet := bson.M{}

		if input.NameSet {
			name := strings.TrimSpace(input.Name)
			if name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
				return
			}
			updateSet["name"] = name
		}
		if input.DescriptionSet {
			updateSet["description"] = strings.TrimSpace(input.Description)
		}
		if input.PriceSet {
			if input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
				return
			}
			updateSet["price"] = input.Price
		}
		if input.CountInStockSet {
			if input.CountInStock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "countInStock must be zero or greater"})
				return
			}
			updateSet["countInStock"] = input.CountInStock
		}
		if input.TagsSet {
			updateSet["tags"] = models.StringList(input.Tags)
		}
		if input.ImageSet {
			imageURL, err := uploads.Upload(c.Request.Context(), input.Image)
			if err != nil {
				log.Println("UpdateProduct image upload failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
				return
			}
			updateSet["imageUrl"] = imageURL
		}

		if len(updateSet) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		result, err := db.Collection("products").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateSet})
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product already exists"})
				return
			}
			log.Println("UpdateProduct update error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var updated models.Product
		if err := db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			log.Println("UpdateProduct reload error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// DeleteProduct hard-deletes a catalog item. Orders referencing it keep their
// denormalized productName and are never touched.
func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			log.Println("DeleteProduct delete error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product removed successfully"})
	}
}
