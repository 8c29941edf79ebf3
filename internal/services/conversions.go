package services

import (
	"context"

	"github.com/sulochan19/image-conversion-api/internal/logger"
	"github.com/sulochan19/image-conversion-api/internal/models"
)

// ConversionLister reads the conversion listing from the store.
type ConversionLister interface {
	ListAll(ctx context.Context) ([]models.ConversionDB, error)
}

// ConversionCache reads and writes the cached conversion listing.
type ConversionCache interface {
	Get(ctx context.Context) ([]models.ConversionDB, error)
	Set(ctx context.Context, conversions []models.ConversionDB) error
}

// ConversionsService serves the conversion listing, cache-aside over the store.
type ConversionsService struct {
	lister ConversionLister
	cache  ConversionCache
}

// NewConversionsService creates a new ConversionsService. cache may be nil.
func NewConversionsService(lister ConversionLister, cache ConversionCache) *ConversionsService {
	return &ConversionsService{
		lister: lister,
		cache:  cache,
	}
}

// List returns every conversion record in creation order.
func (s *ConversionsService) List(ctx context.Context) ([]models.ConversionDB, error) {
	if s.cache != nil {
		if conversions, err := s.cache.Get(ctx); err == nil {
			logger.FromContext(ctx).Infow("conversion listing served from cache", "count", len(conversions))
			return conversions, nil
		}
	}

	conversions, err := s.lister.ListAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list conversions", "err", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, conversions); err != nil {
			logger.FromContext(ctx).Warnw("failed to cache conversion listing", "err", err)
		}
	}

	return conversions, nil
}
