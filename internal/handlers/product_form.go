package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// productFormInput carries parsed multipart fields. The Set flags distinguish
// "absent" from "zero value" so updates can be partial.
type productFormInput struct {
	Name            string
	NameSet         bool
	Description     string
	DescriptionSet  bool
	Price           float64
	PriceSet        bool
	CountInStock    int
	CountInStockSet bool
	Tags            []string
	TagsSet         bool
	Image           *multipart.FileHeader
	ImageSet        bool
}

func parseProductForm(c *gin.Context) (productFormInput, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		return productFormInput{}, err
	}

	input := productFormInput{}

	if value, ok := c.GetPostForm("name"); ok {
		input.Name = strings.TrimSpace(value)
		input.NameSet = true
	}

	if value, ok := c.GetPostForm("description"); ok {
		input.Description = strings.TrimSpace(value)
		input.DescriptionSet = true
	}

	if value, ok := c.GetPostForm("price"); ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return productFormInput{}, errors.New("invalid price")
		}
		input.Price = parsed
		input.PriceSet = true
	}

	if value, ok := c.GetPostForm("countInStock"); ok {
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return productFormInput{}, errors.New("invalid countInStock")
		}
		input.CountInStock = parsed
		input.CountInStockSet = true
	}

	// Tags arrive either as repeated form values or as one comma-delimited
	// string; both normalize to the same list.
	if values, ok := c.GetPostFormArray("tags"); ok {
		input.Tags = normalizeTags(values)
		input.TagsSet = true
	}

	file, err := c.FormFile("image")
	if err == nil {
		input.Image = file
		input.ImageSet = true
	} else if !errors.Is(err, http.ErrMissingFile) &&
		!strings.Contains(err.Error(), "no such file") {
		return productFormInput{}, err
	}

	return input, nil
}

func normalizeTags(values []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)

	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			tag := strings.TrimSpace(part)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
