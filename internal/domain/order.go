package domain

import "strings"

// Order заказ доната, закодированный в deep-link параметре /start.
// Формат: <tier_id>_<nickname>_<price>, например king_PlayerNick_99
type Order struct {
	TierID   string
	Nickname string
	Price    string
}

// TierName отображаемое название донат-пакета заказа
func (o *Order) TierName() string {
	return TierDisplayName(o.TierID)
}

// ParseOrderPayload разбирает deep-link payload на три поля.
// Любое другое количество полей - битые данные заказа.
func ParseOrderPayload(payload string) (*Order, bool) {
	parts := strings.Split(payload, "_")
	if len(parts) != 3 {
		return nil, false
	}

	return &Order{
		TierID:   parts[0],
		Nickname: parts[1],
		Price:    parts[2],
	}, true
}
