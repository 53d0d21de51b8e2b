package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPaymentUseCase мок юзкейса платежа
type mockPaymentUseCase struct {
	CreateDonationPaymentFunc func(ctx context.Context, username, donationName string, price int, returnURL string) (*domain.PaymentIntent, error)
}

func (m *mockPaymentUseCase) CreateDonationPayment(ctx context.Context, username, donationName string, price int, returnURL string) (*domain.PaymentIntent, error) {
	return m.CreateDonationPaymentFunc(ctx, username, donationName, price, returnURL)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupRouter(uc *mockPaymentUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(uc, testLogger()).RegisterRoutes(router)
	return router
}

func postPayments(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreatePayment(t *testing.T) {
	t.Run("success returns payment url and id", func(t *testing.T) {
		uc := &mockPaymentUseCase{
			CreateDonationPaymentFunc: func(ctx context.Context, username, donationName string, price int, returnURL string) (*domain.PaymentIntent, error) {
				assert.Equal(t, "Steve", username)
				assert.Equal(t, "Король", donationName)
				assert.Equal(t, 99, price)
				return &domain.PaymentIntent{
					PaymentID:  "2d1a7b3c",
					PaymentURL: "https://yoomoney.ru/checkout/payments/v2/contract?orderId=2d1a7b3c",
				}, nil
			},
		}
		rec := postPayments(t, setupRouter(uc), `{"username":"Steve","donation_name":"Король","price":99}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp CreatePaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "2d1a7b3c", resp.PaymentID)
		assert.Contains(t, resp.PaymentURL, "yoomoney.ru")
	})

	t.Run("invalid json is a 400", func(t *testing.T) {
		uc := &mockPaymentUseCase{}
		rec := postPayments(t, setupRouter(uc), `{"username":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request data")
	})

	t.Run("validation error is a 400", func(t *testing.T) {
		uc := &mockPaymentUseCase{
			CreateDonationPaymentFunc: func(ctx context.Context, username, donationName string, price int, returnURL string) (*domain.PaymentIntent, error) {
				return nil, domain.NewValidationError("username, donation_name and price are required")
			},
		}
		rec := postPayments(t, setupRouter(uc), `{"price":99}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request data")
	})

	t.Run("missing credentials is a 500", func(t *testing.T) {
		uc := &mockPaymentUseCase{
			CreateDonationPaymentFunc: func(ctx context.Context, username, donationName string, price int, returnURL string) (*domain.PaymentIntent, error) {
				return nil, domain.NewConfigurationError("yookassa credentials not configured")
			},
		}
		rec := postPayments(t, setupRouter(uc), `{"username":"Steve","donation_name":"Король","price":99}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Payment system not configured")
	})

	t.Run("gateway rejection keeps its status and body", func(t *testing.T) {
		uc := &mockPaymentUseCase{
			CreateDonationPaymentFunc: func(ctx context.Context, username, donationName string, price int, returnURL string) (*domain.PaymentIntent, error) {
				return nil, &domain.GatewayHTTPError{
					StatusCode: http.StatusUnauthorized,
					Body:       `{"type":"error","code":"invalid_credentials"}`,
				}
			},
		}
		rec := postPayments(t, setupRouter(uc), `{"username":"Steve","donation_name":"Король","price":99}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "YooKassa API error")
		assert.Contains(t, rec.Body.String(), "invalid_credentials")
	})

	t.Run("missing confirmation url is a 500 with gateway body", func(t *testing.T) {
		uc := &mockPaymentUseCase{
			CreateDonationPaymentFunc: func(ctx context.Context, username, donationName string, price int, returnURL string) (*domain.PaymentIntent, error) {
				return nil, &domain.GatewayLogicError{Body: `{"id":"2d1a7b3c","status":"pending"}`}
			},
		}
		rec := postPayments(t, setupRouter(uc), `{"username":"Steve","donation_name":"Король","price":99}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Payment creation failed")
		assert.Contains(t, rec.Body.String(), "2d1a7b3c")
	})
}
