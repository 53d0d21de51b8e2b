package payment

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	paymentPort "github.com/admin/emeraldworld/shop-backend/internal/ports/payment"
)

// Service создание платежей за донат
type Service struct {
	Provider   paymentPort.IPaymentProvider
	Configured bool // оба секрета YooKassa присутствуют
	Log        *slog.Logger
}

// New создаёт use case платежей. configured=false означает, что секреты шлюза
// не заданы: запросы будут падать с ConfigurationError, не доходя до шлюза.
func New(provider paymentPort.IPaymentProvider, configured bool, log *slog.Logger) *Service {
	return &Service{
		Provider:   provider,
		Configured: configured,
		Log:        log,
	}
}

// CreateDonationPayment валидирует заказ и создаёт платёж в шлюзе.
// Возвращает redirect URL для оплаты.
func (s *Service) CreateDonationPayment(
	ctx context.Context,
	username string,
	donationName string,
	price int,
	returnURL string,
) (*domain.PaymentIntent, error) {
	if username == "" || donationName == "" || price <= 0 {
		return nil, domain.NewValidationError("username, donation_name and positive price are required")
	}

	if !s.Configured || s.Provider == nil {
		s.Log.Error("payment gateway credentials are not configured")
		return nil, domain.NewConfigurationError("payment system not configured")
	}

	if returnURL == "" {
		returnURL = domain.DefaultReturnURL
	}

	req := paymentPort.CreatePaymentRequest{
		Amount:      price,
		Currency:    domain.PaymentCurrency,
		ReturnURL:   returnURL,
		Description: fmt.Sprintf("Донат %s для игрока %s", donationName, username),
		Metadata: map[string]string{
			"username":      username,
			"donation_name": donationName,
		},
	}

	result, err := s.Provider.CreatePayment(ctx, req)
	if err != nil {
		return nil, err
	}

	// Шлюз ответил успешно, но без redirect URL платить некуда
	if result.ConfirmationURL == "" {
		s.Log.Error("yookassa response has no confirmation url",
			"payment_id", result.PaymentID,
			"body", result.RawBody,
		)
		return nil, &domain.GatewayLogicError{Body: result.RawBody}
	}

	s.Log.Info("donation payment created",
		"payment_id", result.PaymentID,
		"username", username,
		"donation_name", donationName,
		"price", price,
	)

	return &domain.PaymentIntent{
		PaymentID:  result.PaymentID,
		PaymentURL: result.ConfirmationURL,
	}, nil
}
