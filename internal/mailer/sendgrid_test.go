package mailer

import (
	"strings"
	"testing"
)

func TestVerificationBodyCarriesLinkAndName(t *testing.T) {
	plain, html := verificationBody("Asha", "https://shop.example.com/verify/abc123")

	if !strings.Contains(plain, "Asha") || !strings.Contains(plain, "https://shop.example.com/verify/abc123") {
		t.Fatalf("plain body missing name or link: %s", plain)
	}
	if !strings.Contains(html, `href="https://shop.example.com/verify/abc123"`) {
		t.Fatalf("html body missing link: %s", html)
	}
}
