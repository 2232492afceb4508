package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c
}

func TestTokenFromRequest_CookieWins(t *testing.T) {
	c := testContext(t)
	c.Request.Header.Set("Cookie", "auth_token=cookie-token")
	c.Request.Header.Set("Authorization", "Bearer header-token")

	token, ok := tokenFromRequest(c, "auth_token")
	if !ok || token != "cookie-token" {
		t.Fatalf("got %q ok=%v, want cookie-token", token, ok)
	}
}

func TestTokenFromRequest_BearerFallback(t *testing.T) {
	c := testContext(t)
	c.Request.Header.Set("Authorization", "Bearer header-token")

	token, ok := tokenFromRequest(c, "auth_token")
	if !ok || token != "header-token" {
		t.Fatalf("got %q ok=%v, want header-token", token, ok)
	}
}

func TestTokenFromRequest_MalformedHeader(t *testing.T) {
	for _, header := range []string{"", "header-token", "Basic abc", "Bearer "} {
		c := testContext(t)
		if header != "" {
			c.Request.Header.Set("Authorization", header)
		}
		if _, ok := tokenFromRequest(c, "auth_token"); ok {
			t.Errorf("header %q must not yield a token", header)
		}
	}
}
