package models

// PaymentLink is the backend's answer to a payment request.
type PaymentLink struct {
	OrderCode   string `json:"orderCode"`
	CheckoutURL string `json:"checkoutUrl"`
}

// PaymentStatus is the backend's view of a payment after the provider redirect.
type PaymentStatus struct {
	OrderCode string `json:"orderCode"`
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
}

// Paid reports whether the provider confirmed the payment.
func (p PaymentStatus) Paid() bool {
	switch p.Status {
	case "PAID", "Paid", "paid", "Success", "SUCCESS":
		return true
	}
	return false
}
