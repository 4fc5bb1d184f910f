package catalog

import (
	"context"
	"math"

	catalogRepo "booktrack/database/repository/catalog"
	reviewRepo "booktrack/database/repository/review"
	"booktrack/models"
	"booktrack/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CatalogService manages the service catalog: provider CRUD plus the public
// listing enriched with review ratings. There is no state machine here.
type CatalogService interface {
	CreateService(ctx context.Context, ident models.Identity, in models.ServiceCreate) (*models.Service, error)
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	ListServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error)
	MyServices(ctx context.Context, ident models.Identity) ([]models.Service, error)
	UpdateService(ctx context.Context, ident models.Identity, serviceID string, in models.ServiceUpdate) (*models.Service, error)
	DeleteService(ctx context.Context, ident models.Identity, serviceID string) error
}

// DefaultCatalogService is the production implementation of CatalogService.
type DefaultCatalogService struct {
	Repo    catalogRepo.CatalogRepository
	Reviews reviewRepo.ReviewRepository
}

// CreateService publishes a new service under the calling provider.
func (s *DefaultCatalogService) CreateService(ctx context.Context, ident models.Identity, in models.ServiceCreate) (*models.Service, error) {
	if ident.Role != models.RoleProvider {
		return nil, utils.NewForbidden("Only providers can create services")
	}

	svc := &models.Service{
		ID:           uuid.New().String(),
		ProviderID:   ident.ID,
		ProviderName: ident.Name,
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		Price:        in.Price,
		Location:     in.Location,
		Duration:     in.Duration,
		ImageURL:     in.ImageURL,
	}
	if err := s.Repo.Create(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetService returns one service with its reviews and rating attached.
func (s *DefaultCatalogService) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.Reviews.ListByService(serviceID)
	if err != nil {
		return nil, err
	}
	svc.Reviews = reviews
	svc.ReviewCount = len(reviews)
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		svc.AverageRating = round1(float64(sum) / float64(len(reviews)))
	}
	return svc, nil
}

// ListServices returns the filtered public catalog with ratings attached.
func (s *DefaultCatalogService) ListServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	services, err := s.Repo.List(filter)
	if err != nil {
		return nil, err
	}
	return s.attachRatings(services)
}

// MyServices returns the calling provider's own services with ratings.
func (s *DefaultCatalogService) MyServices(ctx context.Context, ident models.Identity) ([]models.Service, error) {
	if ident.Role != models.RoleProvider {
		return nil, utils.NewForbidden("Only providers can access this")
	}
	services, err := s.Repo.ListByProvider(ident.ID)
	if err != nil {
		return nil, err
	}
	return s.attachRatings(services)
}

func (s *DefaultCatalogService) attachRatings(services []models.Service) ([]models.Service, error) {
	if len(services) == 0 {
		return services, nil
	}
	summaries, err := s.Reviews.RatingSummaries()
	if err != nil {
		return nil, err
	}
	for i := range services {
		if sum, ok := summaries[services[i].ID]; ok {
			services[i].AverageRating = round1(sum.Average)
			services[i].ReviewCount = sum.Count
		}
	}
	return services, nil
}

// UpdateService applies a partial update to a service owned by the caller.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, ident models.Identity, serviceID string, in models.ServiceUpdate) (*models.Service, error) {
	if ident.Role != models.RoleProvider {
		return nil, utils.NewForbidden("Only providers can update services")
	}

	svc, err := s.Repo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID != ident.ID {
		return nil, utils.NewForbidden("Not authorized")
	}

	fields := bson.M{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Duration != nil {
		fields["duration"] = *in.Duration
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(serviceID, fields); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(serviceID)
}

// DeleteService removes a service owned by the caller.
func (s *DefaultCatalogService) DeleteService(ctx context.Context, ident models.Identity, serviceID string) error {
	if ident.Role != models.RoleProvider {
		return utils.NewForbidden("Only providers can delete services")
	}

	svc, err := s.Repo.GetByID(serviceID)
	if err != nil {
		return err
	}
	if svc.ProviderID != ident.ID {
		return utils.NewForbidden("Not authorized")
	}

	return s.Repo.Delete(serviceID)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
