package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
)

func multipartContext(t *testing.T, build func(w *multipart.Writer)) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	build(writer)
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/api/products", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestParseProductFormSetsFlags(t *testing.T) {
	c := multipartContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("name", " Deluxe Hamper ")
		_ = w.WriteField("price", "49.99")
		_ = w.WriteField("countInStock", "12")
	})

	input, err := parseProductForm(c)
	if err != nil {
		t.Fatalf("parseProductForm returned error: %v", err)
	}
	if !input.NameSet || input.Name != "Deluxe Hamper" {
		t.Fatalf("expected trimmed name, got %+v", input)
	}
	if !input.PriceSet || input.Price != 49.99 {
		t.Fatalf("expected price 49.99, got %+v", input)
	}
	if !input.CountInStockSet || input.CountInStock != 12 {
		t.Fatalf("expected countInStock 12, got %+v", input)
	}
	if input.DescriptionSet || input.TagsSet || input.ImageSet {
		t.Fatalf("expected unset flags for absent fields, got %+v", input)
	}
}

func TestParseProductFormRejectsBadPrice(t *testing.T) {
	c := multipartContext(t, func(w *multipart.Writer) {
		_ = w.WriteField("price", "cheap")
	})

	if _, err := parseProductForm(c); err == nil {
		t.Fatal("expected error for unparseable price")
	}
}

func TestParseProductFormReadsImageFile(t *testing.T) {
	c := multipartContext(t, func(w *multipart.Writer) {
		part, err := w.CreateFormFile("image", "hamper.png")
		if err != nil {
			t.Fatalf("CreateFormFile failed: %v", err)
		}
		_, _ = part.Write([]byte("fake-png-bytes"))
	})

	input, err := parseProductForm(c)
	if err != nil {
		t.Fatalf("parseProductForm returned error: %v", err)
	}
	if !input.ImageSet || input.Image == nil || input.Image.Filename != "hamper.png" {
		t.Fatalf("expected image file, got %+v", input)
	}
}

func TestNormalizeTagsSplitsCommaDelimited(t *testing.T) {
	got := normalizeTags([]string{"birthday, chocolate ,premium"})
	want := []string{"birthday", "chocolate", "premium"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeTagsDedupsAcrossValues(t *testing.T) {
	got := normalizeTags([]string{"birthday", "birthday,corporate", " ", ""})
	want := []string{"birthday", "corporate"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
