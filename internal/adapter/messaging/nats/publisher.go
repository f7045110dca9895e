// Package nats publishes catalog events (favorite toggles, ad tracking,
// editorial changes) as JSON messages. Publishing is fire-and-forget:
// callers log failures and move on.
package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/moto-tn/catalog-service/internal/news/domain"
)

const (
	SubjectFavoriteToggled = "catalog.favorite.toggled"
	SubjectAdViewed        = "catalog.ad.viewed"
	SubjectAdClicked       = "catalog.ad.clicked"
	SubjectNewsCreated     = "catalog.news.created"
	SubjectNewsUpdated     = "catalog.news.updated"
	SubjectNewsDeleted     = "catalog.news.deleted"
)

type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("nats.NewPublisher: connect %s: %w", url, err)
	}
	return &Publisher{conn: conn}, nil
}

func (p *Publisher) Publish(_ context.Context, subject string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("nats.Publisher.Publish %s: marshal: %w", subject, err)
	}
	return p.conn.Publish(subject, jsonData)
}

func (p *Publisher) Close() {
	p.conn.Close()
}

func (p *Publisher) PublishNewsCreated(ctx context.Context, news *domain.News) error {
	return p.Publish(ctx, SubjectNewsCreated, news)
}

func (p *Publisher) PublishNewsUpdated(ctx context.Context, news *domain.News) error {
	return p.Publish(ctx, SubjectNewsUpdated, news)
}

func (p *Publisher) PublishNewsDeleted(ctx context.Context, newsID string) error {
	return p.Publish(ctx, SubjectNewsDeleted, map[string]string{"id": newsID})
}
