package workflow

import (
	"errors"
	"regexp"
	"time"

	"tripway/models"
)

const dateLayout = "2006-01-02"

var (
	cardNumberRe     = regexp.MustCompile(`^\d{4} \d{4} \d{4} \d{4}$`)
	expiryRe         = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	cvvRe            = regexp.MustCompile(`^\d{3,4}$`)
	cardholderNameRe = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
)

// validateDates enforces the booking window rules: both dates present
// and well-formed, start strictly in the future, end strictly after
// start. Boundary cases (start today, end equal to start) are rejected.
func validateDates(startDate, endDate string, now time.Time) error {
	if startDate == "" || endDate == "" {
		return errors.New("Please select both start and end dates")
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return errors.New("Invalid date format")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return errors.New("Invalid date format")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !start.After(today) {
		return errors.New("Start date must be in the future")
	}
	if !end.After(start) {
		return errors.New("End date must be after start date")
	}
	return nil
}

// deriveEndDate computes start + durationDays for flows where the end
// is not chosen explicitly.
func deriveEndDate(startDate string, durationDays int) string {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return ""
	}
	return start.AddDate(0, 0, durationDays).Format(dateLayout)
}

// validateCard checks the payment form before any network call is made.
// The verdict depends only on the card data and the clock, so repeated
// submissions of the same form agree.
func validateCard(card models.CardDetails, now time.Time) error {
	if card.Number == "" || card.Expiry == "" || card.CVV == "" || card.CardholderName == "" {
		return errors.New("Please fill in all payment fields")
	}
	if !cardNumberRe.MatchString(card.Number) {
		return errors.New("Please enter a valid card number in format: XXXX XXXX XXXX XXXX")
	}
	m := expiryRe.FindStringSubmatch(card.Expiry)
	if m == nil {
		return errors.New("Please enter expiry date in format: MM/YY")
	}
	if !cvvRe.MatchString(card.CVV) {
		return errors.New("Please enter a valid CVV (3-4 digits)")
	}
	if !cardholderNameRe.MatchString(card.CardholderName) {
		return errors.New("Please enter a valid cardholder name (2-50 characters, letters and spaces only)")
	}

	// Month-granularity expiry check: a card is expired when its
	// month/year is strictly before the current month/year.
	month := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	year := 2000 + int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return errors.New("Card has expired. Please use a valid card.")
	}
	return nil
}
