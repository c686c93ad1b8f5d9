package Token

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func contextWithBearer(t *testing.T, token string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		c.Request.Header.Set("Authorization", "Bearer "+token)
	}
	return c
}

func TestGenerateAndExtractTokenID(t *testing.T) {
	t.Setenv("API_SECRET", "test-secret")
	t.Setenv("TOKEN_HOUR_LIFESPAN", "1")

	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	c := contextWithBearer(t, token)
	if err := TokenValid(c); err != nil {
		t.Fatalf("token valid: %v", err)
	}

	uid, err := ExtractTokenID(c)
	if err != nil {
		t.Fatalf("extract token id: %v", err)
	}
	if uid != 42 {
		t.Fatalf("expected user id 42, got %d", uid)
	}
}

func TestExtractTokenIDRejectsBadTokens(t *testing.T) {
	t.Setenv("API_SECRET", "test-secret")

	for _, token := range []string{"", "not-a-token"} {
		c := contextWithBearer(t, token)
		uid, err := ExtractTokenID(c)
		if err == nil {
			t.Fatalf("token %q: expected an error, got user id %d", token, uid)
		}
	}
}
