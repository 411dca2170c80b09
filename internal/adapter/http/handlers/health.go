package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/dephea/bitrix-task/internal/adapter/http/middleware"
	"github.com/dephea/bitrix-task/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const (
	StatusOk            = "ok"
	StatusDown          = "down"
	healthBitrixTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Bitrix string `json:"bitrix"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	checker ports.HealthChecker
}

func NewHealthHandler(checker ports.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// CheckHealth is a liveness probe and never touches the provider.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           StatusOk,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	bitrixStatus := StatusDown
	if h.checkBitrix(c.Request.Context()) {
		bitrixStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Bitrix: bitrixStatus,
		},
	})
}

func (h *HealthHandler) checkBitrix(ctx context.Context) bool {
	if h.checker == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthBitrixTimeout)
	defer cancel()
	return h.checker.Ping(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
