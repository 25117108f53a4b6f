package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskd/backend/internal/infrastructure/log"
	"github.com/taskd/backend/internal/interfaces/http/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestContext_GeneratesID(t *testing.T) {
	router := gin.New()
	router.Use(RequestContext())

	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestContext_KeepsClientID(t *testing.T) {
	router := gin.New()
	router.Use(RequestContext(), AccessLog(log.NewModuleLogger("http", "test")))

	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", w.Header().Get(RequestIDHeader))
}

func setupBodyRouter(seen *[]byte) *gin.Engine {
	router := gin.New()
	router.Use(NormalizeBody())
	router.POST("/tasks", func(c *gin.Context) {
		*seen, _ = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})
	return router
}

func TestNormalizeBody_RejectsInvalidUTF8(t *testing.T) {
	var body []byte
	router := setupBodyRouter(&body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader([]byte("{\"name\":\"\xff\xfe\"}")))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, body, "处理函数不应被调用")

	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100001, resp.Code)
	assert.Equal(t, "request body is not valid UTF-8", resp.Detail)
}

func TestNormalizeBody_ComposesToNFC(t *testing.T) {
	var body []byte
	router := setupBodyRouter(&body)

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader("{\"name\":\"cafe\u0301\"}"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "{\"name\":\"caf\u00e9\"}", string(body))
}

func TestNormalizeBody_KeepsPlainUTF8(t *testing.T) {
	var body []byte
	router := setupBodyRouter(&body)

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"name":"写文档"}`))
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"name":"写文档"}`, string(body))
}
