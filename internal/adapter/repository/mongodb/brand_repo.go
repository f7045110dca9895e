package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
)

const brandCollectionName = "brands"

type BrandRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewBrandRepository(client *mongo.Client, dbName string) *BrandRepository {
	db := client.Database(dbName)
	return &BrandRepository{
		db:         db,
		collection: db.Collection(brandCollectionName),
	}
}

func (r *BrandRepository) FindAll(ctx context.Context) ([]domain.Brand, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("BrandRepository.FindAll: %w", err)
	}
	var docs []brandDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("BrandRepository.FindAll: decode: %w", err)
	}
	brands := make([]domain.Brand, 0, len(docs))
	for i := range docs {
		brands = append(brands, toDomainBrand(&docs[i]))
	}
	return brands, nil
}

func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) (int64, error) {
	id, err := nextSequence(ctx, r.db, brandCollectionName)
	if err != nil {
		return 0, fmt.Errorf("BrandRepository.Create: %w", err)
	}
	brand.ID = id

	doc := brandDocument{ID: id, Name: brand.Name, Models: brand.Models}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return 0, fmt.Errorf("BrandRepository.Create: %w", err)
	}
	return id, nil
}

func (r *BrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	doc := brandDocument{ID: brand.ID, Name: brand.Name, Models: brand.Models}
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": brand.ID}, doc)
	if err != nil {
		return fmt.Errorf("BrandRepository.Update %d: %w", brand.ID, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBrandNotFound
	}
	return nil
}

func (r *BrandRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("BrandRepository.Delete %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBrandNotFound
	}
	return nil
}
