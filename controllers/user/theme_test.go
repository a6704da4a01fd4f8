package userControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKV() *storage.KV {
	return &storage.KV{
		Durable: storage.NewMemoryStore(),
		Session: storage.NewMemoryStore(),
	}
}

// themeRouter injects a fixed identity the way the auth middleware would.
func themeRouter(kv *storage.KV) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "u1")
	})
	r.GET("/user/theme", GetTheme(kv))
	r.PUT("/user/theme", SetTheme(kv))
	return r
}

func TestThemeDefaultsToLight(t *testing.T) {
	r := themeRouter(testKV())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/theme", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "light", body["theme"])
}

func TestThemeRoundTrip(t *testing.T) {
	kv := testKV()
	r := themeRouter(kv)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/theme", strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/theme", nil))
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "dark", body["theme"])
}

func TestThemeRejectsUnknownValues(t *testing.T) {
	r := themeRouter(testKV())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/theme", strings.NewReader(`{"theme":"sepia"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
