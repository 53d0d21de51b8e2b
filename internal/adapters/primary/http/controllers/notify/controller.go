package notify

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	"github.com/admin/emeraldworld/shop-backend/internal/ports/usecase"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	NotifyUseCase usecase.INotifyUseCase
	Log           *slog.Logger
}

func New(notifyUseCase usecase.INotifyUseCase, log *slog.Logger) *Controller {
	return &Controller{
		NotifyUseCase: notifyUseCase,
		Log:           log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/notifications/purchase", c.handleNotifyPurchase)
}

func (c *Controller) handleNotifyPurchase(ctx *gin.Context) {
	var req NotifyPurchaseRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind notify purchase request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or donation_name"})
		return
	}

	err := c.NotifyUseCase.NotifyPurchase(ctx.Request.Context(), req.Username, req.DonationName, req.Price)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NotifyPurchaseResponse{
		Success: true,
		Message: "Notification sent",
	})
}

func (c *Controller) respondError(ctx *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or donation_name"})
		return
	}

	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Telegram bot token not configured"})
		return
	}

	var apiErr *domain.MessagingAPIError
	if errors.As(err, &apiErr) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Telegram API error", "details": apiErr.Description})
		return
	}

	c.Log.Error("failed to send purchase notification", "error", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send notification"})
}
