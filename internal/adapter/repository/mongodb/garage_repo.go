package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
)

const garageCollectionName = "garages"

type GarageRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewGarageRepository(client *mongo.Client, dbName string) *GarageRepository {
	db := client.Database(dbName)
	return &GarageRepository{
		db:         db,
		collection: db.Collection(garageCollectionName),
	}
}

func (r *GarageRepository) FindAll(ctx context.Context) ([]domain.Garage, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("GarageRepository.FindAll: %w", err)
	}
	var docs []garageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("GarageRepository.FindAll: decode: %w", err)
	}
	garages := make([]domain.Garage, 0, len(docs))
	for i := range docs {
		garages = append(garages, toDomainGarage(&docs[i]))
	}
	return garages, nil
}

func (r *GarageRepository) FindByID(ctx context.Context, id int64) (*domain.Garage, error) {
	var doc garageDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGarageNotFound
		}
		return nil, fmt.Errorf("GarageRepository.FindByID %d: %w", id, err)
	}
	garage := toDomainGarage(&doc)
	return &garage, nil
}

func (r *GarageRepository) Create(ctx context.Context, garage *domain.Garage) (int64, error) {
	id, err := nextSequence(ctx, r.db, garageCollectionName)
	if err != nil {
		return 0, fmt.Errorf("GarageRepository.Create: %w", err)
	}
	garage.ID = id
	garage.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, toGarageDocument(garage)); err != nil {
		return 0, fmt.Errorf("GarageRepository.Create: %w", err)
	}
	return id, nil
}

func (r *GarageRepository) Update(ctx context.Context, garage *domain.Garage) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": garage.ID}, toGarageDocument(garage))
	if err != nil {
		return fmt.Errorf("GarageRepository.Update %d: %w", garage.ID, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGarageNotFound
	}
	return nil
}

func (r *GarageRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("GarageRepository.Delete %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGarageNotFound
	}
	return nil
}
