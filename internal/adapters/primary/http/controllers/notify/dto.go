package notify

// NotifyPurchaseRequest тело POST /notifications/purchase
type NotifyPurchaseRequest struct {
	Username     string `json:"username"`
	DonationName string `json:"donation_name"`
	Price        int    `json:"price"`
}

// NotifyPurchaseResponse подтверждение отправки уведомления
type NotifyPurchaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
