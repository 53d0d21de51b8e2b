package telegram

import (
	"net/http"

	"log/slog"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	"github.com/admin/emeraldworld/shop-backend/internal/ports/usecase"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	BotUseCase usecase.IBotUseCase
	Log        *slog.Logger
}

func New(botUseCase usecase.IBotUseCase, log *slog.Logger) *Controller {
	return &Controller{
		BotUseCase: botUseCase,
		Log:        log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/webhook/telegram", c.handleWebhook)
}

// handleWebhook принимает обновление от Telegram.
// Всегда отвечает 200 {ok:true}: любой другой статус заставит платформу
// агрессивно передоставлять обновление. Ошибки логируются и глотаются.
func (c *Controller) handleWebhook(ctx *gin.Context) {
	var update domain.Update

	if err := ctx.ShouldBindJSON(&update); err != nil {
		c.Log.Warn("failed to bind webhook update", "error", err)
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	c.Log.Debug("received webhook update", "update_id", update.UpdateID)

	if err := c.BotUseCase.HandleUpdate(ctx.Request.Context(), &update); err != nil {
		c.Log.Error("failed to handle update",
			"error", err,
			"update_id", update.UpdateID,
		)
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
