package models

// Attachment is a file embedded directly in a JSON body as base64. Receipts,
// invoices and the annual plan all use this shape; there is no multipart upload.
type Attachment struct {
	Filename   string `json:"filename" validate:"required"`
	Mimetype   string `json:"mimetype" validate:"required"`
	Base64Data string `json:"base64data" validate:"required,base64"`
}
