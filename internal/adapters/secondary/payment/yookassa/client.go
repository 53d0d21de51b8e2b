package yookassa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	paymentPort "github.com/admin/emeraldworld/shop-backend/internal/ports/payment"
	"github.com/google/uuid"
)

const apiTimeout = 10 * time.Second

// Client клиент YooKassa Payments API v3.
// Аутентификация - HTTP Basic из shop_id и секретного ключа.
type Client struct {
	httpClient *http.Client
	cfg        *Config
	log        *slog.Logger
}

// NewClient создаёт новый клиент YooKassa
func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		cfg: cfg,
		log: log,
	}
}

// amount сумма платежа в формате YooKassa: строка с фиксированной точкой
type amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// confirmation redirect-блок: после оплаты покупателя вернут на return_url
type confirmation struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

// createPaymentBody тело запроса POST /payments
type createPaymentBody struct {
	Amount       amount            `json:"amount"`
	Confirmation confirmation      `json:"confirmation"`
	Capture      bool              `json:"capture"`
	Description  string            `json:"description"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// paymentResponse ответ YooKassa на создание платежа
type paymentResponse struct {
	ID           string        `json:"id"`
	Status       string        `json:"status"`
	Confirmation *confirmation `json:"confirmation,omitempty"`
}

// CreatePayment создаёт платёж с capture-on-confirmation и redirect подтверждением.
// Каждый вызов отправляет свежий Idempotence-Key, поэтому повторы клиента
// не создают двойное списание.
func (c *Client) CreatePayment(ctx context.Context, req paymentPort.CreatePaymentRequest) (*paymentPort.CreatePaymentResult, error) {
	idempotenceKey := uuid.New().String()

	body := createPaymentBody{
		Amount: amount{
			Value:    fmt.Sprintf("%d.00", req.Amount),
			Currency: req.Currency,
		},
		Confirmation: confirmation{
			Type:      "redirect",
			ReturnURL: req.ReturnURL,
		},
		Capture:     true,
		Description: req.Description,
		Metadata:    req.Metadata,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/payments", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.SetBasicAuth(c.cfg.ShopID, c.cfg.SecretKey)
	httpReq.Header.Set("Idempotence-Key", idempotenceKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("failed to send request to yookassa",
			"error", err,
			"idempotence_key", idempotenceKey,
		)
		return nil, domain.WrapTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("failed to read yookassa response body",
			"error", err,
			"status_code", resp.StatusCode,
		)
		return nil, domain.WrapTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("yookassa rejected payment",
			"status_code", resp.StatusCode,
			"body", string(respBody),
			"idempotence_key", idempotenceKey,
		)
		return nil, &domain.GatewayHTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var payment paymentResponse
	if err := json.Unmarshal(respBody, &payment); err != nil {
		c.log.Error("failed to unmarshal yookassa response",
			"error", err,
			"body", string(respBody),
		)
		return nil, &domain.GatewayLogicError{Body: string(respBody)}
	}

	result := &paymentPort.CreatePaymentResult{
		PaymentID: payment.ID,
		RawBody:   string(respBody),
	}
	if payment.Confirmation != nil {
		result.ConfirmationURL = payment.Confirmation.ConfirmationURL
	}

	c.log.Info("yookassa payment created",
		"payment_id", payment.ID,
		"status", payment.Status,
	)

	return result, nil
}
