package catalogRepo

import (
	"booktrack/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CatalogRepository defines the interface for service catalog data access.
type CatalogRepository interface {
	Create(svc *models.Service) error
	GetByID(id string) (*models.Service, error)
	List(filter models.ServiceFilter) ([]models.Service, error)
	ListByProvider(providerID string) ([]models.Service, error)
	UpdateFields(id string, fields bson.M) error
	Delete(id string) error
	Count() (int64, error)
}
