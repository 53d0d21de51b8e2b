package payment

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	"github.com/admin/emeraldworld/shop-backend/internal/ports/usecase"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	PaymentUseCase usecase.IPaymentUseCase
	Log            *slog.Logger
}

func New(paymentUseCase usecase.IPaymentUseCase, log *slog.Logger) *Controller {
	return &Controller{
		PaymentUseCase: paymentUseCase,
		Log:            log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/payments", c.handleCreatePayment)
}

func (c *Controller) handleCreatePayment(ctx *gin.Context) {
	var req CreatePaymentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind create payment request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	intent, err := c.PaymentUseCase.CreateDonationPayment(
		ctx.Request.Context(),
		req.Username,
		req.DonationName,
		req.Price,
		req.ReturnURL,
	)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CreatePaymentResponse{
		Success:    true,
		PaymentURL: intent.PaymentURL,
		PaymentID:  intent.PaymentID,
	})
}

// respondError маппит таксономию ошибок в ответы.
// Отказ шлюза уходит клиенту с его же статусом и телом для диагностики.
func (c *Controller) respondError(ctx *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Payment system not configured"})
		return
	}

	var gatewayErr *domain.GatewayHTTPError
	if errors.As(err, &gatewayErr) {
		ctx.JSON(gatewayErr.StatusCode, gin.H{"error": "YooKassa API error", "details": gatewayErr.Body})
		return
	}

	var logicErr *domain.GatewayLogicError
	if errors.As(err, &logicErr) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Payment creation failed", "details": logicErr.Body})
		return
	}

	c.Log.Error("failed to create payment", "error", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Payment creation failed"})
}
