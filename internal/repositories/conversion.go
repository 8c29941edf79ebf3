package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sulochan19/image-conversion-api/internal/logger"
	"github.com/sulochan19/image-conversion-api/internal/models"
)

type ConversionWriteRepository struct {
	db *sqlx.DB
}

func NewConversionWriteRepository(db *sqlx.DB) *ConversionWriteRepository {
	return &ConversionWriteRepository{db: db}
}

// Save inserts a conversion record and returns it with its assigned id.
func (r *ConversionWriteRepository) Save(ctx context.Context, sourceFile, pngURL, status string, createdAt time.Time) (*models.ConversionDB, error) {
	const query = `
		INSERT INTO conversions (source_file, png_url, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, source_file, png_url, status, created_at
	`
	args := []any{sourceFile, pngURL, status, createdAt}

	var conversion models.ConversionDB
	err := r.db.GetContext(ctx, &conversion, query, args...)

	// Log with query in single line
	logger.FromContext(ctx).Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", conversion,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &conversion, nil
}

type ConversionReadRepository struct {
	db *sqlx.DB
}

func NewConversionReadRepository(db *sqlx.DB) *ConversionReadRepository {
	return &ConversionReadRepository{db: db}
}

// ListAll returns every conversion record in insertion order.
func (r *ConversionReadRepository) ListAll(ctx context.Context) ([]models.ConversionDB, error) {
	const query = `
		SELECT id, source_file, png_url, status, created_at
		FROM conversions
		ORDER BY id
	`

	conversions := make([]models.ConversionDB, 0)
	err := r.db.SelectContext(ctx, &conversions, query)

	// Log with query in single line
	logger.FromContext(ctx).Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(conversions),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return conversions, nil
}
