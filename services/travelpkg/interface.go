package travelpkg

import (
	"context"

	"tripway/models"
)

// PackageService is the typed client for the package bounded context.
type PackageService interface {
	GetAllPackages(ctx context.Context) ([]models.TravelPackage, error)
	GetPackageByID(ctx context.Context, id int64) (*models.TravelPackage, error)
	SearchPackages(ctx context.Context, query string) ([]models.TravelPackage, error)

	GetAgentPackages(ctx context.Context, token string, agentID int64) ([]models.TravelPackage, error)
	GetAgentPackagesWithStats(ctx context.Context, token string, agentID int64) ([]models.PackageStats, error)

	CreatePackage(ctx context.Context, token string, input models.PackageInput) (*models.TravelPackage, error)
	UpdatePackage(ctx context.Context, token string, id int64, input models.PackageInput) (*models.TravelPackage, error)
	DeletePackage(ctx context.Context, token string, id int64) error
}
