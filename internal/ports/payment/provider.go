package payment

import "context"

// IPaymentProvider интерфейс платёжного шлюза (YooKassa).
// Use case зависит только от этого интерфейса, не зная деталей реализации.
type IPaymentProvider interface {
	// CreatePayment создаёт платёж и возвращает redirect URL для подтверждения
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResult, error)
}

// CreatePaymentRequest запрос на создание платежа
type CreatePaymentRequest struct {
	Amount      int    // цена в рублях, без копеек
	Currency    string // "RUB"
	ReturnURL   string // куда вернуть покупателя после оплаты
	Description string
	Metadata    map[string]string // username/donation_name для сверки
}

// CreatePaymentResult результат создания платежа
type CreatePaymentResult struct {
	PaymentID       string // ID платежа в системе шлюза
	ConfirmationURL string // redirect URL, пустой если шлюз его не вернул
	RawBody         string // сырое тело ответа шлюза для диагностики
}
