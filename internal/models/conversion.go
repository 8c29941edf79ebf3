package models

import "time"

// Conversion status values persisted with each record.
const (
	ConversionStatusSuccess = "success"
)

// ConversionDB represents one upload-to-PNG conversion record in the database
type ConversionDB struct {
	ID         int64     `json:"id" db:"id"`                   // Primary key, assigned in insertion order
	SourceFile string    `json:"source_file" db:"source_file"` // Relative path of the stored original
	PNGURL     string    `json:"png_url" db:"png_url"`         // Relative path of the converted PNG
	Status     string    `json:"status" db:"status"`           // Conversion status
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// ConversionEvent is the message published to Kafka for every recorded conversion.
type ConversionEvent struct {
	EventID    string `json:"event_id"`
	RecordID   int64  `json:"record_id"`
	SourceFile string `json:"source_file"`
	PNGURL     string `json:"png_url"`
	Status     string `json:"status"`
	Timestamp  int64  `json:"timestamp"`
}
