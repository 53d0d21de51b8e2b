package payment

// CreatePaymentRequest тело POST /payments
type CreatePaymentRequest struct {
	Username     string `json:"username"`
	DonationName string `json:"donation_name"`
	Price        int    `json:"price"`
	ReturnURL    string `json:"return_url"`
}

// CreatePaymentResponse успешный ответ с redirect URL шлюза
type CreatePaymentResponse struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"payment_url"`
	PaymentID  string `json:"payment_id"`
}
