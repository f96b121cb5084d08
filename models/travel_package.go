package models

import "encoding/json"

// TravelPackage is a trip offering owned by an agent.
type TravelPackage struct {
	PackageID        int64    `json:"packageId"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	DurationDays     int      `json:"durationDays"`
	Price            float64  `json:"price"`
	IncludedServices []string `json:"includedServices"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	AgentID          int64    `json:"agentId"`
}

func (p *TravelPackage) UnmarshalJSON(data []byte) error {
	var raw struct {
		PackageID        flexID          `json:"packageId"`
		ID               flexID          `json:"id"`
		Title            string          `json:"title"`
		Description      string          `json:"description"`
		Duration         json.RawMessage `json:"duration"`
		DurationDays     json.RawMessage `json:"durationDays"`
		Price            flexFloat       `json:"price"`
		IncludedServices json.RawMessage `json:"includedServices"`
		Image            string          `json:"image"`
		ImageURL         string          `json:"imageUrl"`
		AgentID          flexID          `json:"agentId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.PackageID = firstID(raw.PackageID, raw.ID)
	p.Title = raw.Title
	p.Description = raw.Description
	if days := parseDurationDays(raw.DurationDays); days > 0 {
		p.DurationDays = days
	} else {
		p.DurationDays = parseDurationDays(raw.Duration)
	}
	p.Price = float64(raw.Price)
	p.IncludedServices = splitServices(raw.IncludedServices)
	p.ImageURL = firstNonEmpty(raw.ImageURL, raw.Image)
	p.AgentID = int64(raw.AgentID)
	return nil
}

// PackageInput carries an agent's create/update submission.
type PackageInput struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	DurationDays     int      `json:"durationDays" binding:"required,min=1"`
	Price            float64  `json:"price" binding:"required,gt=0"`
	IncludedServices []string `json:"includedServices"`
	ImageURL         string   `json:"imageUrl"`
}

// PackageStats is the server-side join returned by the with-stats variant.
type PackageStats struct {
	Package       TravelPackage `json:"package"`
	BookingCount  int           `json:"bookingCount"`
	TotalRevenue  float64       `json:"totalRevenue"`
	AverageRating float64       `json:"averageRating"`
}
