package services_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/sulochan19/image-conversion-api/internal/models"
	"github.com/sulochan19/image-conversion-api/internal/services"
)

// makeJPEG returns the bytes of a solid-color JPEG with the given dimensions.
func makeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, img, nil)
	assert.NoError(t, err)
	return buf.Bytes()
}

func TestConverterService_Convert_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMedia := services.NewMockMediaSaver(ctrl)
	mockSaver := services.NewMockConversionSaver(ctrl)
	mockCache := services.NewMockCacheInvalidator(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewConverterService(mockMedia, mockSaver, mockCache, mockKafka)

	data := makeJPEG(t, 12, 8)
	record := &models.ConversionDB{
		ID:         1,
		SourceFile: "static/media/abc/photo.jpg",
		PNGURL:     "static/media/abc/photo.png",
		Status:     models.ConversionStatusSuccess,
	}

	mockMedia.EXPECT().
		SaveOriginal(gomock.Any(), "photo.jpg", data).
		Return("abc", "static/media/abc/photo.jpg", nil)

	mockMedia.EXPECT().
		SavePNG(gomock.Any(), "abc", "photo.png", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, img image.Image) (string, error) {
			// Pixel dimensions survive the conversion
			assert.Equal(t, 12, img.Bounds().Dx())
			assert.Equal(t, 8, img.Bounds().Dy())
			return "static/media/abc/photo.png", nil
		})

	mockSaver.EXPECT().
		Save(gomock.Any(), "static/media/abc/photo.jpg", "static/media/abc/photo.png", models.ConversionStatusSuccess, gomock.Any()).
		Return(record, nil)

	mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Convert(context.Background(), "photo.jpg", data)
	assert.NoError(t, err)
	assert.Equal(t, record, got)
}

// makePNG returns the bytes of a solid-color PNG with the given dimensions.
func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	assert.NoError(t, err)
	return buf.Bytes()
}

func TestConverterService_Convert_PNGUploadKeepsOriginal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMedia := services.NewMockMediaSaver(ctrl)
	mockSaver := services.NewMockConversionSaver(ctrl)

	svc := services.NewConverterService(mockMedia, mockSaver, nil, nil)

	data := makePNG(t, 4, 4)
	record := &models.ConversionDB{ID: 5, Status: models.ConversionStatusSuccess}

	mockMedia.EXPECT().
		SaveOriginal(gomock.Any(), "photo.png", data).
		Return("abc", "static/media/abc/photo.png", nil)

	// The output file name must not collide with the stored original
	mockMedia.EXPECT().
		SavePNG(gomock.Any(), "abc", "photo_converted.png", gomock.Any()).
		Return("static/media/abc/photo_converted.png", nil)

	mockSaver.EXPECT().
		Save(gomock.Any(), "static/media/abc/photo.png", "static/media/abc/photo_converted.png", models.ConversionStatusSuccess, gomock.Any()).
		Return(record, nil)

	got, err := svc.Convert(context.Background(), "photo.png", data)
	assert.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestConverterService_Convert_DecodeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMedia := services.NewMockMediaSaver(ctrl)
	mockSaver := services.NewMockConversionSaver(ctrl)

	svc := services.NewConverterService(mockMedia, mockSaver, nil, nil)

	got, err := svc.Convert(context.Background(), "notes.txt", []byte("not an image"))
	assert.ErrorIs(t, err, services.ErrImageDecode)
	assert.Nil(t, got)
}

func TestConverterService_Convert_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMedia := services.NewMockMediaSaver(ctrl)
	mockSaver := services.NewMockConversionSaver(ctrl)

	svc := services.NewConverterService(mockMedia, mockSaver, nil, nil)

	data := makeJPEG(t, 4, 4)
	mockMedia.EXPECT().
		SaveOriginal(gomock.Any(), "photo.jpg", data).
		Return("", "", errors.New("disk full"))

	got, err := svc.Convert(context.Background(), "photo.jpg", data)
	assert.EqualError(t, err, "disk full")
	assert.Nil(t, got)
}

func TestConverterService_Convert_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMedia := services.NewMockMediaSaver(ctrl)
	mockSaver := services.NewMockConversionSaver(ctrl)

	svc := services.NewConverterService(mockMedia, mockSaver, nil, nil)

	data := makeJPEG(t, 4, 4)
	mockMedia.EXPECT().
		SaveOriginal(gomock.Any(), "photo.jpg", data).
		Return("abc", "static/media/abc/photo.jpg", nil)
	mockMedia.EXPECT().
		SavePNG(gomock.Any(), "abc", "photo.png", gomock.Any()).
		Return("static/media/abc/photo.png", nil)
	mockSaver.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("insert failed"))

	got, err := svc.Convert(context.Background(), "photo.jpg", data)
	assert.EqualError(t, err, "insert failed")
	assert.Nil(t, got)
}

func TestConverterService_Convert_SideChannelFailuresTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMedia := services.NewMockMediaSaver(ctrl)
	mockSaver := services.NewMockConversionSaver(ctrl)
	mockCache := services.NewMockCacheInvalidator(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewConverterService(mockMedia, mockSaver, mockCache, mockKafka)

	data := makeJPEG(t, 4, 4)
	record := &models.ConversionDB{ID: 2, Status: models.ConversionStatusSuccess}

	mockMedia.EXPECT().
		SaveOriginal(gomock.Any(), "photo.jpg", data).
		Return("abc", "static/media/abc/photo.jpg", nil)
	mockMedia.EXPECT().
		SavePNG(gomock.Any(), "abc", "photo.png", gomock.Any()).
		Return("static/media/abc/photo.png", nil)
	mockSaver.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(record, nil)

	// Cache and broker failures must not fail the conversion
	mockCache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	got, err := svc.Convert(context.Background(), "photo.jpg", data)
	assert.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestConverterService_Convert_RecordTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMedia := services.NewMockMediaSaver(ctrl)
	mockSaver := services.NewMockConversionSaver(ctrl)

	svc := services.NewConverterService(mockMedia, mockSaver, nil, nil)

	data := makeJPEG(t, 4, 4)
	before := time.Now()

	mockMedia.EXPECT().
		SaveOriginal(gomock.Any(), "photo.jpg", data).
		Return("abc", "static/media/abc/photo.jpg", nil)
	mockMedia.EXPECT().
		SavePNG(gomock.Any(), "abc", "photo.png", gomock.Any()).
		Return("static/media/abc/photo.png", nil)
	mockSaver.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, createdAt time.Time) (*models.ConversionDB, error) {
			assert.False(t, createdAt.Before(before))
			assert.False(t, createdAt.After(time.Now()))
			return &models.ConversionDB{ID: 3, CreatedAt: createdAt}, nil
		})

	_, err := svc.Convert(context.Background(), "photo.jpg", data)
	assert.NoError(t, err)
}
