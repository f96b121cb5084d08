package insurance

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"tripway/gateway"
	"tripway/models"
)

// InsuranceService is the typed client for the insurance bounded
// context plus the fixed selection catalog merged into checkout totals.
type InsuranceService interface {
	GetOfferCatalog(ctx context.Context) []models.InsuranceOffer
	FindOffer(ctx context.Context, id int64) (*models.InsuranceOffer, error)
	GetAllPolicies(ctx context.Context, token string) ([]models.InsurancePolicy, error)
	GetUserPolicies(ctx context.Context, token string, userID int64) ([]models.InsurancePolicy, error)
	PurchasePolicy(ctx context.Context, token string, input models.PolicyInput) (*models.InsurancePolicy, error)
}

// The built-in three-tier catalog. The insurance-service exposes
// /api/insurance/types with the same entries; the static copy keeps the
// selection list renderable when that call fails.
var staticCatalog = []models.InsuranceOffer{
	{
		ID:          1,
		Name:        "Basic Coverage",
		Description: "Medical emergencies and trip interruption",
		Price:       49.99,
		Provider:    "GlobalCover Insurance",
	},
	{
		ID:          2,
		Name:        "Standard Coverage",
		Description: "Medical, trip cancellation, and baggage protection",
		Price:       79.99,
		Provider:    "TravelSafe Insurance",
	},
	{
		ID:          3,
		Name:        "Premium Coverage",
		Description: "Comprehensive coverage with 24/7 assistance",
		Price:       129.99,
		Provider:    "WorldWide Insurance",
	},
}

// DefaultInsuranceService implements InsuranceService over the API gateway.
type DefaultInsuranceService struct {
	Gateway gateway.Caller
}

// GetOfferCatalog returns the selection list, preferring the
// insurance-service's copy and falling back to the built-in catalog.
func (s *DefaultInsuranceService) GetOfferCatalog(ctx context.Context) []models.InsuranceOffer {
	res := s.Gateway.Do(ctx, "/api/insurance/types", gateway.Options{})
	if res.Success {
		var offers []models.InsuranceOffer
		if err := res.Decode(&offers); err == nil && len(offers) > 0 {
			return offers
		}
	}
	catalog := make([]models.InsuranceOffer, len(staticCatalog))
	copy(catalog, staticCatalog)
	return catalog
}

// FindOffer resolves one catalog entry by ID.
func (s *DefaultInsuranceService) FindOffer(ctx context.Context, id int64) (*models.InsuranceOffer, error) {
	for _, offer := range s.GetOfferCatalog(ctx) {
		if offer.ID == id {
			o := offer
			return &o, nil
		}
	}
	return nil, fmt.Errorf("unknown insurance offer: %d", id)
}

// GetAllPolicies lists every sold policy, for the admin view.
func (s *DefaultInsuranceService) GetAllPolicies(ctx context.Context, token string) ([]models.InsurancePolicy, error) {
	res := s.Gateway.Do(ctx, "/api/insurance", gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var policies []models.InsurancePolicy
	if err := res.Decode(&policies); err != nil {
		return nil, fmt.Errorf("failed to parse policies: %w", err)
	}
	return policies, nil
}

func (s *DefaultInsuranceService) GetUserPolicies(ctx context.Context, token string, userID int64) ([]models.InsurancePolicy, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/insurance/user/%d", userID), gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var policies []models.InsurancePolicy
	if err := res.Decode(&policies); err != nil {
		return nil, fmt.Errorf("failed to parse policies: %w", err)
	}
	return policies, nil
}

func (s *DefaultInsuranceService) PurchasePolicy(ctx context.Context, token string, input models.PolicyInput) (*models.InsurancePolicy, error) {
	res := s.Gateway.Do(ctx, "/api/insurance", gateway.Options{
		Method: http.MethodPost,
		Data:   input,
		Token:  token,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var policy models.InsurancePolicy
	if err := res.Decode(&policy); err != nil {
		return nil, fmt.Errorf("failed to parse policy: %w", err)
	}
	return &policy, nil
}
