package domain

import "time"

// Category splits editorial content between market news and maintenance tips.
type Category string

const (
	CategoryNews Category = "news"
	CategoryTip  Category = "tip"
)

type News struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  Category  `json:"category"`
	AuthorID  string    `json:"author_id"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
