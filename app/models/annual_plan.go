package models

import "time"

// AnnualPlan is the single uploaded planning document. Uploading a new one
// replaces the previous one; at most one exists at a time.
type AnnualPlan struct {
	Filename   string    `json:"filename" validate:"required"`
	Mimetype   string    `json:"mimetype" validate:"required"`
	Base64Data string    `json:"base64data" validate:"required,base64"`
	UploadedAt time.Time `json:"uploaded_at"`
}
