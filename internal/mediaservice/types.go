package mediaservice

import (
	"fmt"
	"net/http"
	"time"
)

// Kind selects the validation profile for an upload. Blog cover and inline
// images use KindImage; the careers page accepts CV documents via KindDocument.
type Kind int

const (
	KindImage Kind = iota
	KindDocument
)

const (
	maxImageSize    = 2 << 20  // 2MB
	maxDocumentSize = 10 << 20 // 10MB
)

var allowedTypes = map[Kind]map[string]bool{
	KindImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	},
	KindDocument: {
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	},
}

// UploadResult mirrors the media host's response. The secure URL is stored
// verbatim on the owning record; the host stays the source of truth for the
// binary.
type UploadResult struct {
	URL      string `json:"secure_url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Bytes    int64  `json:"bytes"`
}

// UploadError is returned when the media host rejects an upload.
type UploadError struct {
	StatusCode int
	Message    string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("media host rejected upload (%d): %s", e.StatusCode, e.Message)
}

type MediaService struct {
	client       *http.Client
	baseURL      string
	uploadPreset string
}

func NewMediaService(baseURL, uploadPreset string) *MediaService {
	return &MediaService{
		client:       &http.Client{Timeout: 30 * time.Second},
		baseURL:      baseURL,
		uploadPreset: uploadPreset,
	}
}
