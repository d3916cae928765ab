package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskflow/internal/adapter/http/middleware"
	"taskflow/pkg/clock"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

// Pinger is satisfied by *sqlx.DB and by the in-memory store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type AppInfo struct {
	Name    string
	Version string
	Driver  string
}

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Driver string `json:"driver"`
	Store  string `json:"store"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	store Pinger
	info  AppInfo
	clock clock.Clock
}

func NewHealthHandler(store Pinger, info AppInfo, clk clock.Clock) *HealthHandler {
	if clk == nil {
		clk = clock.Real()
	}
	return &HealthHandler{store: store, info: info, clock: clk}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkStore(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           h.info.Name,
		AppVersion:        h.info.Version,
		CurrentSystemTime: h.currentTime(),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	storeStatus := StatusDown
	if h.checkStore(c.Request.Context()) {
		storeStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.info.Name,
		AppVersion:        h.info.Version,
		CurrentSystemTime: h.currentTime(),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Driver: h.info.Driver,
			Store:  storeStatus,
		},
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) bool {
	if h.store == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.store.PingContext(timeoutCtx) == nil
}

func (h *HealthHandler) currentTime() string {
	return h.clock.Now().Format("2006-01-02 15:04:05")
}
