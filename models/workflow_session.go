package models

// Workflow states for the booking-and-payment flow. A flow only ever
// advances one step per call; Cancelled is terminal.
const (
	FlowBrowsing         = "browsing"
	FlowPackageSelected  = "package_selected"
	FlowDatesChosen      = "dates_chosen"
	FlowBookingCreated   = "booking_created"
	FlowPaymentSubmitted = "payment_submitted"
	FlowConfirmed        = "confirmed"
	FlowCancelled        = "cancelled"
)

// WorkflowSession holds context between package selection and final
// confirmation. The BookingID captured at creation time is the only
// source of booking identity for the payment step; it is never
// re-derived from a list.
type WorkflowSession struct {
	FlowID    string          `json:"flowId"`
	UserID    int64           `json:"userId"`
	State     string          `json:"state"`
	Package   TravelPackage   `json:"package"`
	StartDate string          `json:"startDate,omitempty"`
	EndDate   string          `json:"endDate,omitempty"`
	Insurance *InsuranceOffer `json:"insurance,omitempty"`
	BookingID int64           `json:"bookingId,omitempty"`
	PaymentID int64           `json:"paymentId,omitempty"`
}

// Total is the exact amount submitted for payment: package price plus
// the selected insurance premium, zero if none.
func (w WorkflowSession) Total() float64 {
	total := w.Package.Price
	if w.Insurance != nil {
		total += w.Insurance.Price
	}
	return total
}
