package storage

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader pushes images to Cloudinary and returns the hosted URL.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld, folder: "gift-hampers"}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := validateImage(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		log.Printf("[UPLOAD] [ERROR] open upload %s failed: %v", file.Filename, err)
		return "", err
	}
	defer src.Close()

	res, err := u.cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		log.Printf("[UPLOAD] [ERROR] cloudinary upload %s failed: %v", file.Filename, err)
		return "", err
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", res.Error.Message)
	}

	return res.SecureURL, nil
}
