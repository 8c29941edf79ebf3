package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sulochan19/image-conversion-api/internal/logger"
	"github.com/sulochan19/image-conversion-api/internal/models"
	"github.com/sulochan19/image-conversion-api/internal/services"
)

// maxUploadMemory bounds how much of the multipart body is held in memory.
const maxUploadMemory = 32 << 20

// Converter defines the interface that the conversion service must implement.
type Converter interface {
	Convert(ctx context.Context, filename string, data []byte) (*models.ConversionDB, error)
}

// UploadResponse represents a successful conversion response
// swagger:model UploadResponse
type UploadResponse struct {
	// Relative URL of the converted PNG
	// default: static/media/abc/photo.png
	PNGURL string `json:"png-url"`

	// Conversion status
	// default: Success
	Status string `json:"status"`
}

// UploadErrorResponse represents an error response for the upload endpoint
// swagger:model UploadErrorResponse
type UploadErrorResponse struct {
	// Error message
	// default: could not decode uploaded image
	Error string `json:"error"`
}

// NewUploadHandler returns an HTTP handler that converts an uploaded JPEG to PNG.
// @Summary Upload an image for conversion
// @Description Accepts a multipart JPEG upload, stores the original, converts it to PNG and records the conversion
// @Tags conversions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "JPEG image to convert"
// @Success 201 {object} handlers.UploadResponse "Image converted"
// @Failure 400 {object} handlers.UploadErrorResponse "Missing file"
// @Failure 401 "Missing or invalid token"
// @Failure 422 {object} handlers.UploadErrorResponse "Upload is not a decodable image"
// @Failure 500 {object} handlers.UploadErrorResponse "Storage or persistence failure"
// @Router /uploadfile/ [post]
func NewUploadHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{
				Error: "invalid multipart body",
			})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{
				Error: "file field is required",
			})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to read uploaded file", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UploadErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		conversion, err := svc.Convert(ctx, header.Filename, data)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrImageDecode):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(UploadErrorResponse{
					Error: "could not decode uploaded image",
				})
			default:
				logger.FromContext(ctx).Errorw("conversion failed", "filename", header.Filename, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UploadErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadResponse{
			PNGURL: conversion.PNGURL,
			Status: "Success",
		})
	}
}
