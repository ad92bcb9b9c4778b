package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/storage"
)

const maxUploadBatch = 5

// UploadSingle stores one image through the storage adapter and returns its
// public URL.
func UploadSingle(uploads storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		imageURL, err := uploads.Upload(c.Request.Context(), file)
		if err != nil {
			log.Println("UploadSingle upload failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"imageUrl": imageURL})
	}
}

// UploadMultiple stores up to five images and returns their URLs in order.
func UploadMultiple(uploads storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No images uploaded"})
			return
		}

		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No images uploaded"})
			return
		}
		if len(files) > maxUploadBatch {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Too many images (max 5)"})
			return
		}

		urls := make([]string, 0, len(files))
		for _, file := range files {
			imageURL, err := uploads.Upload(c.Request.Context(), file)
			if err != nil {
				log.Println("UploadMultiple upload failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
				return
			}
			urls = append(urls, imageURL)
		}

		c.JSON(http.StatusCreated, gin.H{"imageUrls": urls})
	}
}
