package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ManuelReschke/StudioSite/app/models"
	"github.com/ManuelReschke/StudioSite/internal/pkg/cache"
	"github.com/ManuelReschke/StudioSite/internal/pkg/logger"
)

type quoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(quote *models.Quote) error {
	return r.db.Create(quote).Error
}

func (r *quoteRepository) GetByUUID(uuid string) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.Where("uuid = ?", uuid).First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) GetRecent(limit int) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Order("created_at DESC").Limit(limit).Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Quote{}).Count(&count).Error
	return count, err
}

const (
	quoteCacheKey = "quote:%s"
	quoteCacheTTL = 24 * time.Hour
)

// QuoteCache stores saved quotes by UUID. Get reports a miss as
// ok == false.
type QuoteCache interface {
	Get(key string, quote *models.Quote) (bool, error)
	Set(key string, quote *models.Quote) error
}

// RedisQuoteCache keeps quotes in the shared cache server.
type RedisQuoteCache struct{}

func (RedisQuoteCache) Get(key string, quote *models.Quote) (bool, error) {
	err := cache.GetJSON(context.Background(), key, quote)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	return err == nil, err
}

func (RedisQuoteCache) Set(key string, quote *models.Quote) error {
	return cache.SetJSON(context.Background(), key, quote, quoteCacheTTL)
}

// cachedQuoteRepository reads saved quotes through the cache. Quotes are
// immutable once stored, so entries are never invalidated.
type cachedQuoteRepository struct {
	QuoteRepository
	cache QuoteCache
}

func NewCachedQuoteRepository(inner QuoteRepository, c QuoteCache) QuoteRepository {
	return &cachedQuoteRepository{QuoteRepository: inner, cache: c}
}

func (r *cachedQuoteRepository) Create(quote *models.Quote) error {
	if err := r.QuoteRepository.Create(quote); err != nil {
		return err
	}
	if err := r.cache.Set(fmt.Sprintf(quoteCacheKey, quote.UUID), quote); err != nil {
		logger.L().Debug("quote cache write failed", zap.String("uuid", quote.UUID), zap.Error(err))
	}
	return nil
}

func (r *cachedQuoteRepository) GetByUUID(uuid string) (*models.Quote, error) {
	key := fmt.Sprintf(quoteCacheKey, uuid)

	var cached models.Quote
	ok, err := r.cache.Get(key, &cached)
	if err != nil {
		logger.L().Debug("quote cache read failed", zap.String("uuid", uuid), zap.Error(err))
	}
	if ok {
		return &cached, nil
	}

	quote, err := r.QuoteRepository.GetByUUID(uuid)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(key, quote); err != nil {
		logger.L().Debug("quote cache write failed", zap.String("uuid", uuid), zap.Error(err))
	}
	return quote, nil
}
