package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/news/domain"
	"github.com/moto-tn/catalog-service/internal/port/cache"
)

type NATSPublisherInterface interface {
	PublishNewsCreated(ctx context.Context, news *domain.News) error
	PublishNewsUpdated(ctx context.Context, news *domain.News) error
	PublishNewsDeleted(ctx context.Context, newsID string) error
}

type NewsUseCase struct {
	newsRepo      domain.NewsRepository
	natsPublisher NATSPublisherInterface
	cacheRepo     cache.CacheRepository
	logger        *zap.Logger
}

func NewNewsUseCase(
	nr domain.NewsRepository,
	np NATSPublisherInterface,
	cr cache.CacheRepository,
	log *zap.Logger,
) *NewsUseCase {
	return &NewsUseCase{
		newsRepo:      nr,
		natsPublisher: np,
		cacheRepo:     cr,
		logger:        log,
	}
}

func newsCacheKey(newsID string) string {
	return fmt.Sprintf("news:%s", newsID)
}

const newsCacheTTL = 5 * time.Minute

type CreateNewsInput struct {
	Title    string
	Content  string
	Category domain.Category
	AuthorID string
	ImageURL string
}

func (uc *NewsUseCase) CreateNews(ctx context.Context, input CreateNewsInput) (*domain.News, error) {
	now := time.Now()
	news := &domain.News{
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		AuthorID:  input.AuthorID,
		ImageURL:  input.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	createdID, err := uc.newsRepo.Create(ctx, news)
	if err != nil {
		uc.logger.Error("Failed to create news in repository", zap.Error(err), zap.String("title", input.Title))
		return nil, fmt.Errorf("NewsUseCase.CreateNews: failed to create news in repo: %w", err)
	}
	news.ID = createdID

	uc.cacheNews(ctx, news)

	if uc.natsPublisher != nil {
		if errPub := uc.natsPublisher.PublishNewsCreated(ctx, news); errPub != nil {
			uc.logger.Warn("Failed to publish NATS event for news created",
				zap.Error(errPub), zap.String("news_id", news.ID))
		}
	}

	return news, nil
}

func (uc *NewsUseCase) GetNewsByID(ctx context.Context, id string) (*domain.News, error) {
	if uc.cacheRepo != nil {
		key := newsCacheKey(id)
		cachedBytes, err := uc.cacheRepo.Get(ctx, key)
		if err == nil {
			var newsFromCache domain.News
			if unmarshalErr := json.Unmarshal(cachedBytes, &newsFromCache); unmarshalErr == nil {
				uc.logger.Debug("News fetched from cache", zap.String("key", key))
				return &newsFromCache, nil
			}
			uc.logger.Warn("Discarding corrupted news cache entry", zap.String("key", key))
			if delErr := uc.cacheRepo.Delete(ctx, key); delErr != nil {
				uc.logger.Warn("Failed to delete corrupted data from cache", zap.String("key", key), zap.Error(delErr))
			}
		} else if !errors.Is(err, cache.ErrNotFound) {
			uc.logger.Warn("Failed to get news from cache (not a cache miss)", zap.Error(err), zap.String("key", key))
		}
	}

	news, err := uc.newsRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNewsNotFound) {
			uc.logger.Error("Failed to get news by ID from repository", zap.Error(err), zap.String("news_id", id))
		}
		return nil, fmt.Errorf("NewsUseCase.GetNewsByID: failed to get news from repo: %w", err)
	}

	uc.cacheNews(ctx, news)
	return news, nil
}

type UpdateNewsInput struct {
	ID       string
	Title    *string
	Content  *string
	Category *domain.Category
	ImageURL *string
}

func (uc *NewsUseCase) UpdateNews(ctx context.Context, input UpdateNewsInput) (*domain.News, error) {
	news, err := uc.newsRepo.GetByID(ctx, input.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNewsNotFound) {
			uc.logger.Error("Failed to get news for update from repository", zap.Error(err), zap.String("news_id", input.ID))
		}
		return nil, fmt.Errorf("NewsUseCase.UpdateNews: failed to get news for update: %w", err)
	}

	updated := false
	if input.Title != nil && news.Title != *input.Title {
		news.Title = *input.Title
		updated = true
	}
	if input.Content != nil && news.Content != *input.Content {
		news.Content = *input.Content
		updated = true
	}
	if input.Category != nil && news.Category != *input.Category {
		news.Category = *input.Category
		updated = true
	}
	if input.ImageURL != nil && news.ImageURL != *input.ImageURL {
		news.ImageURL = *input.ImageURL
		updated = true
	}
	if !updated {
		return news, nil
	}

	news.UpdatedAt = time.Now()
	if err := uc.newsRepo.Update(ctx, news); err != nil {
		uc.logger.Error("Failed to update news in repository", zap.Error(err), zap.String("news_id", news.ID))
		return nil, fmt.Errorf("NewsUseCase.UpdateNews: failed to update news in repo: %w", err)
	}

	uc.cacheNews(ctx, news)

	if uc.natsPublisher != nil {
		if errPub := uc.natsPublisher.PublishNewsUpdated(ctx, news); errPub != nil {
			uc.logger.Warn("Failed to publish NATS event for news updated",
				zap.Error(errPub), zap.String("news_id", news.ID))
		}
	}

	return news, nil
}

func (uc *NewsUseCase) DeleteNews(ctx context.Context, id string) error {
	if err := uc.newsRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNewsNotFound) {
			uc.logger.Error("Failed to delete news from repository", zap.Error(err), zap.String("news_id", id))
		}
		return fmt.Errorf("NewsUseCase.DeleteNews: failed to delete news: %w", err)
	}

	if uc.cacheRepo != nil {
		if delErr := uc.cacheRepo.Delete(ctx, newsCacheKey(id)); delErr != nil {
			uc.logger.Warn("Failed to delete news from cache", zap.String("news_id", id), zap.Error(delErr))
		}
	}

	if uc.natsPublisher != nil {
		if errPub := uc.natsPublisher.PublishNewsDeleted(ctx, id); errPub != nil {
			uc.logger.Warn("Failed to publish NATS event for news deleted",
				zap.Error(errPub), zap.String("news_id", id))
		}
	}

	return nil
}

func (uc *NewsUseCase) ListNews(ctx context.Context, page, pageSize int, category domain.Category) ([]*domain.News, int, error) {
	items, total, err := uc.newsRepo.List(ctx, page, pageSize, category)
	if err != nil {
		uc.logger.Error("Failed to list news from repository", zap.Error(err))
		return nil, 0, fmt.Errorf("NewsUseCase.ListNews: %w", err)
	}
	return items, total, nil
}

func (uc *NewsUseCase) cacheNews(ctx context.Context, news *domain.News) {
	if uc.cacheRepo == nil || news == nil {
		return
	}
	newsBytes, err := json.Marshal(news)
	if err != nil {
		uc.logger.Warn("Failed to marshal news for caching", zap.Error(err), zap.String("news_id", news.ID))
		return
	}
	key := newsCacheKey(news.ID)
	if setErr := uc.cacheRepo.Set(ctx, key, newsBytes, newsCacheTTL); setErr != nil {
		uc.logger.Warn("Failed to set news in cache", zap.Error(setErr), zap.String("key", key))
	}
}
