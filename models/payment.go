package models

import "encoding/json"

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment is the record the payment-service keeps for a booking charge.
type Payment struct {
	PaymentID     int64   `json:"paymentId"`
	UserID        int64   `json:"userId"`
	BookingID     int64   `json:"bookingId"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	CardLastFour  string  `json:"cardLastFour,omitempty"`
	TransactionID string  `json:"transactionId,omitempty"`
	Description   string  `json:"description,omitempty"`
}

func (p *Payment) UnmarshalJSON(data []byte) error {
	var raw struct {
		PaymentID     flexID    `json:"paymentId"`
		ID            flexID    `json:"id"`
		UserID        flexID    `json:"userId"`
		BookingID     flexID    `json:"bookingId"`
		Amount        flexFloat `json:"amount"`
		Status        string    `json:"status"`
		PaymentMethod string    `json:"paymentMethod"`
		Method        string    `json:"method"`
		CardLastFour  string    `json:"cardLastFour"`
		TransactionID string    `json:"transactionId"`
		Description   string    `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.PaymentID = firstID(raw.PaymentID, raw.ID)
	p.UserID = int64(raw.UserID)
	p.BookingID = int64(raw.BookingID)
	p.Amount = float64(raw.Amount)
	p.Status = raw.Status
	p.PaymentMethod = firstNonEmpty(raw.PaymentMethod, raw.Method)
	p.CardLastFour = raw.CardLastFour
	p.TransactionID = raw.TransactionID
	p.Description = raw.Description
	return nil
}

// PaymentRequest is the process payload. It carries the held booking
// reference, the exact total and the masked card only; the full PAN
// never leaves this process.
type PaymentRequest struct {
	BookingID     int64   `json:"bookingId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	CardLastFour  string  `json:"cardLastFour"`
	Description   string  `json:"description,omitempty"`
}

// CardDetails is the raw payment form as submitted by the UI. It is
// validated and masked locally; only LastFour ever reaches the wire.
type CardDetails struct {
	Number         string `json:"cardNumber"`
	Expiry         string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

// LastFour returns the trailing digits of the card number with spacing
// stripped.
func (c CardDetails) LastFour() string {
	digits := make([]byte, 0, len(c.Number))
	for i := 0; i < len(c.Number); i++ {
		if c.Number[i] >= '0' && c.Number[i] <= '9' {
			digits = append(digits, c.Number[i])
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}
