package domain

import (
	"context"
	"errors"
)

var ErrNewsNotFound = errors.New("news article not found")

type NewsRepository interface {
	Create(ctx context.Context, news *News) (string, error)
	GetByID(ctx context.Context, id string) (*News, error)
	Update(ctx context.Context, news *News) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, pageSize int, category Category) ([]*News, int, error)
}
