package models

import "encoding/json"

// Booking statuses. A booking is created pending and only moves to
// confirmed after a successful payment confirmation call.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking represents one user's reservation of a package. Dates are
// "YYYY-MM-DD" strings as exchanged with the booking-service. PaymentID
// is assigned by the backend once payment succeeds, never by this client.
type Booking struct {
	BookingID int64  `json:"bookingId"`
	UserID    int64  `json:"userId"`
	PackageID int64  `json:"packageId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
	PaymentID int64  `json:"paymentId,omitempty"`
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw struct {
		BookingID flexID `json:"bookingId"`
		ID        flexID `json:"id"`
		UserID    flexID `json:"userId"`
		PackageID flexID `json:"packageId"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		Status    string `json:"status"`
		PaymentID flexID `json:"paymentId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.BookingID = firstID(raw.BookingID, raw.ID)
	b.UserID = int64(raw.UserID)
	b.PackageID = int64(raw.PackageID)
	b.StartDate = raw.StartDate
	b.EndDate = raw.EndDate
	b.Status = raw.Status
	b.PaymentID = int64(raw.PaymentID)
	return nil
}

// BookingInput is the create payload; the backend derives the user from
// the bearer token.
type BookingInput struct {
	PackageID int64  `json:"packageId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

// BookingWithDetails is the server-side join returned by the
// with-details variant, sparing the client an N+1 fetch.
type BookingWithDetails struct {
	Booking Booking        `json:"booking"`
	Package *TravelPackage `json:"package,omitempty"`
	Payment *Payment       `json:"payment,omitempty"`
}

// AgentDashboard is the aggregate the booking-service assembles for an
// agent's packages.
type AgentDashboard struct {
	Packages       []TravelPackage `json:"packages"`
	Bookings       []Booking       `json:"bookings"`
	TotalRevenue   float64         `json:"totalRevenue"`
	PendingCount   int             `json:"pendingCount"`
	ConfirmedCount int             `json:"confirmedCount"`
}
