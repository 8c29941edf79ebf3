package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sulochan19/image-conversion-api/internal/logger"
	"github.com/sulochan19/image-conversion-api/internal/models"
)

// ErrImageDecode is returned when the uploaded bytes are not a decodable image.
var ErrImageDecode = errors.New("could not decode image")

// MediaSaver defines the file-area operations the converter needs.
type MediaSaver interface {
	SaveOriginal(ctx context.Context, filename string, data []byte) (dir, relPath string, err error)
	SavePNG(ctx context.Context, dir, filename string, img image.Image) (string, error)
}

// ConversionSaver persists one conversion record.
type ConversionSaver interface {
	Save(ctx context.Context, sourceFile, pngURL, status string, createdAt time.Time) (*models.ConversionDB, error)
}

// CacheInvalidator drops the cached conversion listing.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ConverterService turns uploaded JPEGs into PNGs, persists both files and the
// audit record, and publishes a conversion event.
type ConverterService struct {
	media       MediaSaver
	saver       ConversionSaver
	cache       CacheInvalidator
	kafkaWriter KafkaWriter
}

// NewConverterService creates a new ConverterService. cache and kafkaWriter may
// be nil; both are best-effort side channels.
func NewConverterService(media MediaSaver, saver ConversionSaver, cache CacheInvalidator, kafkaWriter KafkaWriter) *ConverterService {
	return &ConverterService{
		media:       media,
		saver:       saver,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Convert decodes the upload, stores the original bytes unchanged, encodes a
// PNG next to it and records the conversion. Decode failures come back as
// ErrImageDecode; storage and persistence failures propagate so the caller can
// report them instead of pretending success.
func (s *ConverterService) Convert(ctx context.Context, filename string, data []byte) (*models.ConversionDB, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to decode uploaded image", "filename", filename, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	logger.FromContext(ctx).Infow("image decoded", "filename", filename, "format", format)

	dir, sourcePath, err := s.media.SaveOriginal(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	// Flatten to an opaque RGBA raster so PNG output has plain color channels.
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	base := filepath.Base(filename)
	pngName := strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	if pngName == base {
		// A ".png" upload would otherwise overwrite its own stored original.
		pngName = strings.TrimSuffix(base, ".png") + "_converted.png"
	}
	pngPath, err := s.media.SavePNG(ctx, dir, pngName, rgba)
	if err != nil {
		return nil, err
	}

	conversion, err := s.saver.Save(ctx, sourcePath, pngPath, models.ConversionStatusSuccess, time.Now())
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to record conversion", "source", sourcePath, "err", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.FromContext(ctx).Warnw("failed to invalidate conversion listing cache", "err", err)
		}
	}

	s.publishConversion(ctx, conversion)

	return conversion, nil
}

// publishConversion publishes a conversion event to Kafka.
func (s *ConverterService) publishConversion(ctx context.Context, conversion *models.ConversionDB) {
	if s.kafkaWriter == nil {
		logger.FromContext(ctx).Warnw("Kafka writer not configured, skipping publishing", "record_id", conversion.ID)
		return
	}

	event := models.ConversionEvent{
		EventID:    uuid.NewString(),
		RecordID:   conversion.ID,
		SourceFile: conversion.SourceFile,
		PNGURL:     conversion.PNGURL,
		Status:     conversion.Status,
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to marshal conversion event for Kafka", "record_id", conversion.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("Failed to publish conversion event to Kafka", "record_id", conversion.ID, "error", err)
	} else {
		logger.FromContext(ctx).Infow("Conversion event published to Kafka", "record_id", conversion.ID)
	}
}
