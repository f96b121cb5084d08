package travelpkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"tripway/gateway"
	"tripway/models"
)

// DefaultPackageService implements PackageService over the API gateway.
type DefaultPackageService struct {
	Gateway gateway.Caller
}

func (s *DefaultPackageService) GetAllPackages(ctx context.Context) ([]models.TravelPackage, error) {
	res := s.Gateway.Do(ctx, "/api/packages", gateway.Options{})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var packages []models.TravelPackage
	if err := res.Decode(&packages); err != nil {
		return nil, fmt.Errorf("failed to parse packages: %w", err)
	}
	return packages, nil
}

func (s *DefaultPackageService) GetPackageByID(ctx context.Context, id int64) (*models.TravelPackage, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/packages/%d", id), gateway.Options{})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var pkg models.TravelPackage
	if err := res.Decode(&pkg); err != nil {
		return nil, fmt.Errorf("failed to parse package: %w", err)
	}
	return &pkg, nil
}

func (s *DefaultPackageService) SearchPackages(ctx context.Context, query string) ([]models.TravelPackage, error) {
	res := s.Gateway.Do(ctx, "/api/packages/search", gateway.Options{
		Params: map[string]string{"q": query},
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var packages []models.TravelPackage
	if err := res.Decode(&packages); err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}
	return packages, nil
}

func (s *DefaultPackageService) GetAgentPackages(ctx context.Context, token string, agentID int64) ([]models.TravelPackage, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/packages/agent/%d", agentID), gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var packages []models.TravelPackage
	if err := res.Decode(&packages); err != nil {
		return nil, fmt.Errorf("failed to parse agent packages: %w", err)
	}
	return packages, nil
}

func (s *DefaultPackageService) GetAgentPackagesWithStats(ctx context.Context, token string, agentID int64) ([]models.PackageStats, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/packages/agent/%d/with-stats", agentID), gateway.Options{Token: token})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var stats []models.PackageStats
	if err := res.Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to parse package stats: %w", err)
	}
	return stats, nil
}

func (s *DefaultPackageService) CreatePackage(ctx context.Context, token string, input models.PackageInput) (*models.TravelPackage, error) {
	res := s.Gateway.Do(ctx, "/api/packages", gateway.Options{
		Method: http.MethodPost,
		Data:   input,
		Token:  token,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var pkg models.TravelPackage
	if err := res.Decode(&pkg); err != nil {
		return nil, fmt.Errorf("failed to parse package: %w", err)
	}
	return &pkg, nil
}

func (s *DefaultPackageService) UpdatePackage(ctx context.Context, token string, id int64, input models.PackageInput) (*models.TravelPackage, error) {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/packages/%d", id), gateway.Options{
		Method: http.MethodPut,
		Data:   input,
		Token:  token,
	})
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	var pkg models.TravelPackage
	if err := res.Decode(&pkg); err != nil {
		return nil, fmt.Errorf("failed to parse package: %w", err)
	}
	return &pkg, nil
}

func (s *DefaultPackageService) DeletePackage(ctx context.Context, token string, id int64) error {
	res := s.Gateway.Do(ctx, fmt.Sprintf("/api/packages/%d", id), gateway.Options{
		Method: http.MethodDelete,
		Token:  token,
	})
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}
