package domain

import "time"

type ListingType string

const (
	TypeMoto        ListingType = "moto"
	TypeScooter     ListingType = "scooter"
	TypeAccessories ListingType = "accessories"
)

type SellerType string

const (
	SellerIndividual SellerType = "individual"
	SellerPro        SellerType = "pro"
)

// DealRating is a 1-3 editorial tier on a listing's price competitiveness.
// Zero means no rating.
type DealRating int

const (
	DealGood      DealRating = 1
	DealVeryGood  DealRating = 2
	DealExcellent DealRating = 3
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Listing is a classified ad for a motorcycle, scooter or accessory.
// Price, MileageKm and DisplacementCc keep the formatted display strings the
// marketplace serves ("12 500 TND", "45 000 km"); numeric values are parsed
// out at filter/sort time.
type Listing struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Price          string      `json:"price"`
	Location       string      `json:"location"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	Brand          string      `json:"brand"`
	Model          string      `json:"model"`
	Year           string      `json:"year"`
	MileageKm      string      `json:"mileage_km"`
	DisplacementCc string      `json:"displacement_cc"`
	Type           ListingType `json:"type"`
	SellerType     SellerType  `json:"seller_type"`
	DealRating     DealRating  `json:"deal_rating,omitempty"`
	Description    string      `json:"description,omitempty"`
	ImageURL       string      `json:"image_url,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Garage is a workshop/dealer profile in the directory.
type Garage struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"review_count"`
	IsVerified  bool         `json:"is_verified"`
	Specialties []string     `json:"specialties"`
	Phone       string       `json:"phone,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Brand is admin-managed reference data: a manufacturer and its known models.
type Brand struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Models []string `json:"models"`
}

// Item is the common surface of the two catalog entities the query engine
// operates on. Filtering and sorting never mutate the underlying entity.
type Item interface {
	ItemID() int64
	ItemTitle() string
	ItemLocation() string
	ItemCoordinates() *Coordinates
}

func (l Listing) ItemID() int64                 { return l.ID }
func (l Listing) ItemTitle() string             { return l.Title }
func (l Listing) ItemLocation() string          { return l.Location }
func (l Listing) ItemCoordinates() *Coordinates { return l.Coordinates }

func (g Garage) ItemID() int64                 { return g.ID }
func (g Garage) ItemTitle() string             { return g.Name }
func (g Garage) ItemLocation() string          { return g.City }
func (g Garage) ItemCoordinates() *Coordinates { return g.Coordinates }
