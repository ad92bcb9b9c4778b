// Package client wraps the storefront REST API behind typed calls, mirroring
// the frontend's data-access layer: same success and failure shapes, with HTTP
// error bodies translated into displayable messages. No retries, no caching;
// callers re-fetch after a mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError carries the status code and the server's human-readable message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Product struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	CountInStock int       `json:"countInStock"`
	ImageURL     string    `json:"imageUrl"`
	Tags         []string  `json:"tags,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Order struct {
	ID            string    `json:"_id"`
	ProductID     string    `json:"productId,omitempty"`
	ProductName   string    `json:"productName,omitempty"`
	UserName      string    `json:"userName"`
	UserMobile    string    `json:"userMobile"`
	CustomDetails string    `json:"customDetails,omitempty"`
	IsCustom      bool      `json:"isCustom"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AuthUser struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

type Profile struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"isAdmin"`
	IsVerified bool   `json:"isVerified"`
}

type OrderInput struct {
	ProductID     string `json:"productId,omitempty"`
	UserName      string `json:"userName"`
	UserMobile    string `json:"userMobile"`
	CustomDetails string `json:"customDetails,omitempty"`
	IsCustom      bool   `json:"isCustom"`
}

// UploadFile is one image attachment for multipart requests.
type UploadFile struct {
	Name   string
	Reader io.Reader
}

// ProductForm carries product fields for create/update. Nil pointers are
// omitted from the form, which makes updates partial on the server.
type ProductForm struct {
	Name         *string
	Description  *string
	Price        *float64
	CountInStock *int
	Tags         []string
	Image        *UploadFile
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates an account and returns the server's status message, which
// distinguishes the mail-sent and mail-failed variants.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var out messageResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodGet, "/api/auth/verify/"+token, nil, nil)
}

// Login authenticates and remembers the issued token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthUser, error) {
	var out AuthUser
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var out Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, form ProductForm) (*Product, error) {
	var out Product
	if err := c.doMultipart(ctx, http.MethodPost, "/api/products", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, form ProductForm) (*Product, error) {
	var out Product
	if err := c.doMultipart(ctx, http.MethodPut, "/api/products/"+id, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}

func (c *Client) CreateOrder(ctx context.Context, input OrderInput) (*Order, error) {
	var out Order
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/orders/"+id, nil, nil)
}

func (c *Client) UploadImage(ctx context.Context, file UploadFile) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", file.Name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.doRaw(ctx, http.MethodPost, "/api/upload/single", body, writer.FormDataContentType(), &out); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

func (c *Client) UploadImages(ctx context.Context, files []UploadFile) ([]string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, file := range files {
		part, err := writer.CreateFormFile("images", file.Name)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	var out struct {
		ImageURLs []string `json:"imageUrls"`
	}
	if err := c.doRaw(ctx, http.MethodPost, "/api/upload/multiple", body, writer.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return out.ImageURLs, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.doRaw(ctx, method, path, body, contentType, out)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, form ProductForm, out interface{}) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if form.Name != nil {
		_ = writer.WriteField("name", *form.Name)
	}
	if form.Description != nil {
		_ = writer.WriteField("description", *form.Description)
	}
	if form.Price != nil {
		_ = writer.WriteField("price", strconv.FormatFloat(*form.Price, 'f', -1, 64))
	}
	if form.CountInStock != nil {
		_ = writer.WriteField("countInStock", strconv.Itoa(*form.CountInStock))
	}
	for _, tag := range form.Tags {
		_ = writer.WriteField("tags", tag)
	}
	if form.Image != nil {
		part, err := writer.CreateFormFile("image", form.Image.Name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, form.Image.Reader); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return c.doRaw(ctx, method, path, body, writer.FormDataContentType(), out)
}

func (c *Client) doRaw(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(data, resp.StatusCode)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// extractMessage pulls a displayable message out of an error body. The server
// responds with {"error": ...}; {"message": ...} is accepted too for
// compatibility with older deployments.
func extractMessage(data []byte, status int) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
