package domain

// PaymentCurrency валюта магазина
const PaymentCurrency = "RUB"

// DefaultReturnURL куда возвращаем покупателя, если клиент не прислал return_url
const DefaultReturnURL = "https://emeraldworld.ru"

// PaymentIntent созданный в шлюзе платёж с redirect URL для оплаты
type PaymentIntent struct {
	PaymentID  string
	PaymentURL string
}
