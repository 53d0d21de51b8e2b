package usecase

import (
	"context"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
)

// IPaymentUseCase создание платежей за донат (use case слой)
type IPaymentUseCase interface {
	CreateDonationPayment(
		ctx context.Context,
		username string,
		donationName string,
		price int,
		returnURL string,
	) (*domain.PaymentIntent, error)
}

// INotifyUseCase уведомление оператора о покупке
type INotifyUseCase interface {
	NotifyPurchase(ctx context.Context, username string, donationName string, price int) error
}
