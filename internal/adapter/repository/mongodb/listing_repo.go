package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
)

const listingCollectionName = "listings"

type ListingRepository struct {
	collection *mongo.Collection
}

func NewListingRepository(client *mongo.Client, dbName string) *ListingRepository {
	return &ListingRepository{
		collection: client.Database(dbName).Collection(listingCollectionName),
	}
}

func (r *ListingRepository) FindAll(ctx context.Context) ([]domain.Listing, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.FindAll: %w", err)
	}
	var docs []listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("ListingRepository.FindAll: decode: %w", err)
	}
	listings := make([]domain.Listing, 0, len(docs))
	for i := range docs {
		listings = append(listings, toDomainListing(&docs[i]))
	}
	return listings, nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var doc listingDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("ListingRepository.FindByID %d: %w", id, err)
	}
	listing := toDomainListing(&doc)
	return &listing, nil
}
