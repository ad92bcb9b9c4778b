package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	userID := primitive.NewObjectID()
	signed, err := issueToken(userID, "secret", 30*24*time.Hour)
	if err != nil {
		t.Fatalf("issueToken returned error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("expected valid token, got err=%v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["userId"] != userID.Hex() {
		t.Fatalf("expected userId claim %s, got %v", userID.Hex(), claims["userId"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("expected exp claim")
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < 29*24*time.Hour || remaining > 30*24*time.Hour {
		t.Fatalf("expected roughly 30 day expiry, got %v", remaining)
	}
}

func TestNewVerificationTokenIsUniqueHex(t *testing.T) {
	first, err := newVerificationToken()
	if err != nil {
		t.Fatalf("newVerificationToken returned error: %v", err)
	}
	second, err := newVerificationToken()
	if err != nil {
		t.Fatalf("newVerificationToken returned error: %v", err)
	}

	if len(first) != 40 {
		t.Fatalf("expected 40 hex chars, got %d", len(first))
	}
	if first == second {
		t.Fatal("expected distinct tokens")
	}
}

// unreachableDatabase builds a client whose server selection fails almost
// immediately, so every operation surfaces a transport error.
func unreachableDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	opts := options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50 * time.Millisecond)
	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		t.Fatalf("mongo.Connect returned error: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("testdb")
}

func TestGetProfileReportsStoreFailureAs500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", primitive.NewObjectID())
	})
	r.GET("/api/auth/profile", GetProfile(unreachableDatabase(t)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/profile", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "User not found") {
		t.Fatalf("expected db error, not a not-found response: %s", w.Body.String())
	}
}

func TestGetProfileRequiresAuthContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/auth/profile", GetProfile(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/profile", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestBuildVerifyURL(t *testing.T) {
	got := buildVerifyURL("https://shop.example.com/", "abc123")
	want := "https://shop.example.com/verify/abc123"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	got = buildVerifyURL("https://shop.example.com", "abc123")
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
