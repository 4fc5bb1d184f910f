package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"booktrack/database"
	"booktrack/models"
	"booktrack/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	coll := database.DB().Collection("services")
	repo := &MongoCatalogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new service document.
func (r *MongoCatalogRepo) Create(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	svc.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return utils.NewUnavailable(fmt.Sprintf("failed to create service: %v", err))
	}
	return nil
}

// GetByID retrieves a service by its unique ID.
func (r *MongoCatalogRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFound("service not found")
		}
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch service with id %s: %v", id, err))
	}
	return &svc, nil
}

// List retrieves services matching the given filter.
func (r *MongoCatalogRepo) List(filter models.ServiceFilter) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Location != "" {
		query["location"] = bson.M{"$regex": primitive.Regex{Pattern: filter.Location, Options: "i"}}
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}

	return r.find(ctx, query)
}

// ListByProvider retrieves the services published by one provider.
func (r *MongoCatalogRepo) ListByProvider(providerID string) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	return r.find(ctx, bson.M{"provider_id": providerID})
}

func (r *MongoCatalogRepo) find(ctx context.Context, query bson.M) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to retrieve services: %v", err))
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// UpdateFields applies a partial $set update to a service document.
func (r *MongoCatalogRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return utils.NewUnavailable(fmt.Sprintf("failed to update service with id %s: %v", id, err))
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFound("service not found")
	}
	return nil
}

// Delete removes a service document by its ID.
func (r *MongoCatalogRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return utils.NewUnavailable(fmt.Sprintf("failed to delete service with id %s: %v", id, err))
	}
	if result.DeletedCount == 0 {
		return utils.NewNotFound("service not found")
	}
	return nil
}

// Count reports the total number of services.
func (r *MongoCatalogRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, utils.NewUnavailable(fmt.Sprintf("failed to count services: %v", err))
	}
	return count, nil
}
