package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sulochan19/image-conversion-api/internal/logger"
	"github.com/sulochan19/image-conversion-api/internal/models"
)

// Lister defines the interface that the listing service must implement.
type Lister interface {
	List(ctx context.Context) ([]models.ConversionDB, error)
}

// ConversionsErrorResponse represents an error response for the listing endpoint
// swagger:model ConversionsErrorResponse
type ConversionsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewConversionsHandler returns an HTTP handler listing all conversion requests.
// @Summary List conversion requests
// @Description Returns every recorded conversion in creation order
// @Tags conversions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ConversionDB "Conversion records"
// @Failure 401 "Missing or invalid token"
// @Failure 500 {object} handlers.ConversionsErrorResponse "Listing failure"
// @Router /list-conversion-requests [get]
func NewConversionsHandler(svc Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conversions, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to list conversions", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ConversionsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(conversions)
	}
}
