package servers

import (
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	"github.com/admin/emeraldworld/shop-backend/internal/ports/usecase"
	"github.com/gin-gonic/gin"
)

// userIDHeader клиентская идентичность, без аутентификации
const userIDHeader = "X-User-Id"

type Controller struct {
	ServerUseCase usecase.IServerUseCase
	Log           *slog.Logger
}

func New(serverUseCase usecase.IServerUseCase, log *slog.Logger) *Controller {
	return &Controller{
		ServerUseCase: serverUseCase,
		Log:           log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/servers", c.handleCreate)
	router.GET("/servers", c.handleList)
	router.PUT("/servers", c.handleUpdateStatus)
	router.PATCH("/servers", c.handleUpdateAddress)
	router.DELETE("/servers", c.handleDelete)
}

func (c *Controller) userID(ctx *gin.Context) string {
	userID := ctx.GetHeader(userIDHeader)
	if userID == "" {
		return domain.AnonymousUserID
	}
	return userID
}

func (c *Controller) handleCreate(ctx *gin.Context) {
	// Пустое тело допустимо: все поля имеют значения по умолчанию
	var req CreateServerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Log.Warn("failed to bind create server request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	record, err := c.ServerUseCase.Create(ctx.Request.Context(), c.userID(ctx), usecase.CreateServerInput{
		Name:    req.ServerName,
		Version: req.ServerVersion,
		IP:      req.ServerIP,
	})
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CreateServerResponse{
		ServerResponse: toServerResponse(record),
		DownloadURL:    domain.DownloadURLForVersion(record.Version),
		Message:        "Конфигурация сервера создана! Скачайте файлы для запуска.",
	})
}

func (c *Controller) handleList(ctx *gin.Context) {
	records, err := c.ServerUseCase.List(ctx.Request.Context(), c.userID(ctx))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	servers := make([]ServerResponse, 0, len(records))
	for _, record := range records {
		servers = append(servers, toServerResponse(record))
	}

	ctx.JSON(http.StatusOK, ListServersResponse{Servers: servers})
}

func (c *Controller) handleUpdateStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind update status request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	newStatus, err := c.ServerUseCase.SetStatus(ctx.Request.Context(), req.ServerID, domain.ServerAction(req.Action))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "newStatus": newStatus})
}

func (c *Controller) handleUpdateAddress(ctx *gin.Context) {
	var req UpdateAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind update address request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "serverId и newIp обязательны"})
		return
	}

	if err := c.ServerUseCase.SetAddress(ctx.Request.Context(), req.ServerID, req.NewIP); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "updated", "newIp": req.NewIP})
}

func (c *Controller) handleDelete(ctx *gin.Context) {
	serverID := ctx.Query("serverId")

	if err := c.ServerUseCase.Delete(ctx.Request.Context(), serverID); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (c *Controller) respondError(ctx *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Msg})
		return
	}

	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
		return
	}

	var storageErr *domain.StorageUnavailableError
	if errors.As(err, &storageErr) {
		c.Log.Error("server storage unavailable", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database unavailable"})
		return
	}

	c.Log.Error("server operation failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
