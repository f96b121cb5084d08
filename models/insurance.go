package models

import "encoding/json"

// InsuranceOffer is one entry of the selection catalog merged into the
// payment total during checkout.
type InsuranceOffer struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Provider    string  `json:"provider"`
}

func (o *InsuranceOffer) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          flexID    `json:"id"`
		InsuranceID flexID    `json:"insuranceId"`
		Name        string    `json:"name"`
		PolicyType  string    `json:"policyType"`
		Description string    `json:"description"`
		Price       flexFloat `json:"price"`
		Premium     flexFloat `json:"premium"`
		Provider    string    `json:"provider"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.ID = firstID(raw.ID, raw.InsuranceID)
	o.Name = firstNonEmpty(raw.Name, raw.PolicyType)
	o.Description = raw.Description
	if raw.Price != 0 {
		o.Price = float64(raw.Price)
	} else {
		o.Price = float64(raw.Premium)
	}
	o.Provider = raw.Provider
	return nil
}

// InsurancePolicy is a purchased policy attached to a booking.
type InsurancePolicy struct {
	InsuranceID  int64   `json:"insuranceId"`
	UserID       int64   `json:"userId"`
	BookingID    int64   `json:"bookingId"`
	PolicyType   string  `json:"policyType"`
	PolicyNumber string  `json:"policyNumber,omitempty"`
	Premium      float64 `json:"premium"`
	Status       string  `json:"status"`
}

func (p *InsurancePolicy) UnmarshalJSON(data []byte) error {
	var raw struct {
		InsuranceID  flexID    `json:"insuranceId"`
		ID           flexID    `json:"id"`
		UserID       flexID    `json:"userId"`
		BookingID    flexID    `json:"bookingId"`
		PolicyType   string    `json:"policyType"`
		PolicyNumber string    `json:"policyNumber"`
		Premium      flexFloat `json:"premium"`
		Status       string    `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.InsuranceID = firstID(raw.InsuranceID, raw.ID)
	p.UserID = int64(raw.UserID)
	p.BookingID = int64(raw.BookingID)
	p.PolicyType = raw.PolicyType
	p.PolicyNumber = raw.PolicyNumber
	p.Premium = float64(raw.Premium)
	p.Status = raw.Status
	return nil
}

// PolicyInput purchases a policy for a booking.
type PolicyInput struct {
	BookingID  int64   `json:"bookingId" binding:"required"`
	PolicyType string  `json:"policyType" binding:"required"`
	Premium    float64 `json:"premium" binding:"required,gt=0"`
}
