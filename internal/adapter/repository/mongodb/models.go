package mongodb

import (
	"time"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
)

type coordinatesDoc struct {
	Lat float64 `bson:"lat"`
	Lng float64 `bson:"lng"`
}

type listingDocument struct {
	ID             int64             `bson:"_id"`
	Title          string            `bson:"title"`
	Price          string            `bson:"price"`
	Location       string            `bson:"location"`
	Coordinates    *coordinatesDoc   `bson:"coordinates,omitempty"`
	Brand          string            `bson:"brand"`
	Model          string            `bson:"model"`
	Year           string            `bson:"year"`
	MileageKm      string            `bson:"mileage_km"`
	DisplacementCc string            `bson:"displacement_cc"`
	Type           domain.ListingType `bson:"type"`
	SellerType     domain.SellerType `bson:"seller_type"`
	DealRating     int               `bson:"deal_rating,omitempty"`
	Description    string            `bson:"description,omitempty"`
	ImageURL       string            `bson:"image_url,omitempty"`
	CreatedAt      time.Time         `bson:"created_at"`
}

type garageDocument struct {
	ID          int64           `bson:"_id"`
	Name        string          `bson:"name"`
	Address     string          `bson:"address"`
	City        string          `bson:"city"`
	Coordinates *coordinatesDoc `bson:"coordinates,omitempty"`
	Rating      float64         `bson:"rating"`
	ReviewCount int             `bson:"review_count"`
	IsVerified  bool            `bson:"is_verified"`
	Specialties []string        `bson:"specialties,omitempty"`
	Phone       string          `bson:"phone,omitempty"`
	CreatedAt   time.Time       `bson:"created_at"`
}

type brandDocument struct {
	ID     int64    `bson:"_id"`
	Name   string   `bson:"name"`
	Models []string `bson:"models,omitempty"`
}

func toCoordinatesDoc(c *domain.Coordinates) *coordinatesDoc {
	if c == nil {
		return nil
	}
	return &coordinatesDoc{Lat: c.Lat, Lng: c.Lng}
}

func toDomainCoordinates(d *coordinatesDoc) *domain.Coordinates {
	if d == nil {
		return nil
	}
	return &domain.Coordinates{Lat: d.Lat, Lng: d.Lng}
}

func toDomainListing(d *listingDocument) domain.Listing {
	return domain.Listing{
		ID:             d.ID,
		Title:          d.Title,
		Price:          d.Price,
		Location:       d.Location,
		Coordinates:    toDomainCoordinates(d.Coordinates),
		Brand:          d.Brand,
		Model:          d.Model,
		Year:           d.Year,
		MileageKm:      d.MileageKm,
		DisplacementCc: d.DisplacementCc,
		Type:           d.Type,
		SellerType:     d.SellerType,
		DealRating:     domain.DealRating(d.DealRating),
		Description:    d.Description,
		ImageURL:       d.ImageURL,
		CreatedAt:      d.CreatedAt,
	}
}

func toGarageDocument(g *domain.Garage) *garageDocument {
	return &garageDocument{
		ID:          g.ID,
		Name:        g.Name,
		Address:     g.Address,
		City:        g.City,
		Coordinates: toCoordinatesDoc(g.Coordinates),
		Rating:      g.Rating,
		ReviewCount: g.ReviewCount,
		IsVerified:  g.IsVerified,
		Specialties: g.Specialties,
		Phone:       g.Phone,
		CreatedAt:   g.CreatedAt,
	}
}

func toDomainGarage(d *garageDocument) domain.Garage {
	return domain.Garage{
		ID:          d.ID,
		Name:        d.Name,
		Address:     d.Address,
		City:        d.City,
		Coordinates: toDomainCoordinates(d.Coordinates),
		Rating:      d.Rating,
		ReviewCount: d.ReviewCount,
		IsVerified:  d.IsVerified,
		Specialties: d.Specialties,
		Phone:       d.Phone,
		CreatedAt:   d.CreatedAt,
	}
}

func toDomainBrand(d *brandDocument) domain.Brand {
	return domain.Brand{
		ID:     d.ID,
		Name:   d.Name,
		Models: d.Models,
	}
}
