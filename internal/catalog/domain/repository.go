package domain

import "context"

// ListingRepository is the read side of the catalog data provider. Listings
// are published through a separate ingestion path; this service only queries
// them.
type ListingRepository interface {
	FindAll(ctx context.Context) ([]Listing, error)
	FindByID(ctx context.Context, id int64) (*Listing, error)
}

type GarageRepository interface {
	FindAll(ctx context.Context) ([]Garage, error)
	FindByID(ctx context.Context, id int64) (*Garage, error)
	Create(ctx context.Context, garage *Garage) (int64, error)
	Update(ctx context.Context, garage *Garage) error
	Delete(ctx context.Context, id int64) error
}

type BrandRepository interface {
	FindAll(ctx context.Context) ([]Brand, error)
	Create(ctx context.Context, brand *Brand) (int64, error)
	Update(ctx context.Context, brand *Brand) error
	Delete(ctx context.Context, id int64) error
}
