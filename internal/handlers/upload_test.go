package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/sulochan19/image-conversion-api/internal/models"
	"github.com/sulochan19/image-conversion-api/internal/services"
)

// multipartBody builds a multipart body with a single file field.
func multipartBody(t *testing.T, fieldName, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(fieldName, filename)
	assert.NoError(t, err)
	_, err = fw.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileData := []byte("jpeg bytes")

	tests := []struct {
		name         string
		fieldName    string
		mockSetup    func(m *MockConverter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:      "success",
			fieldName: "file",
			mockSetup: func(m *MockConverter) {
				m.EXPECT().
					Convert(gomock.Any(), "photo.jpg", fileData).
					Return(&models.ConversionDB{
						ID:     1,
						PNGURL: "static/media/abc/photo.png",
						Status: models.ConversionStatusSuccess,
					}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"png-url": "static/media/abc/photo.png", "status": "Success"},
		},
		{
			name:      "undecodable image",
			fieldName: "file",
			mockSetup: func(m *MockConverter) {
				m.EXPECT().
					Convert(gomock.Any(), "photo.jpg", fileData).
					Return(nil, services.ErrImageDecode)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"error": "could not decode uploaded image"},
		},
		{
			name:      "storage failure",
			fieldName: "file",
			mockSetup: func(m *MockConverter) {
				m.EXPECT().
					Convert(gomock.Any(), "photo.jpg", fileData).
					Return(nil, errors.New("disk full"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "missing file field",
			fieldName:    "other",
			mockSetup:    func(m *MockConverter) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "file field is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockConverter(ctrl)
			tt.mockSetup(mockSvc)

			body, contentType := multipartBody(t, tt.fieldName, "photo.jpg", fileData)
			req := httptest.NewRequest(http.MethodPost, "/uploadfile/", body)
			req.Header.Set("Content-Type", contentType)
			rr := httptest.NewRecorder()

			NewUploadHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}

func TestUploadHandler_NotMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockConverter(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/uploadfile/", bytes.NewReader([]byte("plain body")))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()

	NewUploadHandler(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
