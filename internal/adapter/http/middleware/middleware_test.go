package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dephea/bitrix-task/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func langRouter() *gin.Engine {
	router := gin.New()
	router.GET("/lang", middleware.LanguageMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetLang(c))
	})
	return router
}

func TestLanguageMiddleware(t *testing.T) {
	cases := map[string]string{
		"":                        "en",
		"ru":                      "ru",
		"ru-RU,ru;q=0.9,en;q=0.8": "ru",
		"en-US,en;q=0.9":          "en",
		"fr-FR":                   "en",
		"de;q=0.9,ru;q=0.5":       "ru",
	}

	router := langRouter()
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/lang", nil)
		if header != "" {
			req.Header.Set("Accept-Language", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Body.String(), header)
	}
}

func TestGetLang_DefaultsToEnglish(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "en", middleware.GetLang(c))
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	var seen string
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDMiddleware_ReusesIncoming(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(middleware.RequestIDHeader))
}

func TestGinZapMiddleware_LevelFollowsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware(), middleware.GinZapMiddleware(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/bad", "/fail"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
	assert.Equal(t, "/fail", entries[2].ContextMap()["path"])
}
