package storage

import (
	"mime/multipart"
	"testing"
)

func TestValidateImageAcceptsKnownExtensions(t *testing.T) {
	for _, name := range []string{"hamper.jpg", "hamper.JPEG", "hamper.png", "hamper.webp"} {
		file := &multipart.FileHeader{Filename: name, Size: 1024}
		if err := validateImage(file); err != nil {
			t.Fatalf("expected %s to be accepted, got %v", name, err)
		}
	}
}

func TestValidateImageRejectsUnknownExtension(t *testing.T) {
	file := &multipart.FileHeader{Filename: "hamper.gif", Size: 1024}
	if err := validateImage(file); err == nil {
		t.Fatal("expected error for .gif upload")
	}
}

func TestValidateImageRejectsMissingExtension(t *testing.T) {
	file := &multipart.FileHeader{Filename: "hamper", Size: 1024}
	if err := validateImage(file); err == nil {
		t.Fatal("expected error for missing extension")
	}
}

func TestValidateImageRejectsOversizeFile(t *testing.T) {
	file := &multipart.FileHeader{Filename: "hamper.png", Size: maxImageSize + 1}
	if err := validateImage(file); err == nil {
		t.Fatal("expected error for oversize file")
	}
}
