package mediaservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/draftwerk/studiohub/internal/common"
)

// Upload validates the file and posts it to the media host. On success the
// host's metadata is returned; the caller persists only the URL string.
func (s *MediaService) Upload(ctx context.Context, filename, contentType string, size int64, file io.Reader, kind Kind) (*UploadResult, error) {
	v := common.NewValidator()
	validateUpload(v, contentType, size, kind)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("upload_preset", s.uploadPreset); err != nil {
		return nil, err
	}

	// a fresh public id per upload keeps host-side filenames collision-free
	if err := writer.WriteField("public_id", uuid.NewString()); err != nil {
		return nil, err
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/upload", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach media host: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var errBody struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}

		message := "unknown error"
		if err := json.NewDecoder(res.Body).Decode(&errBody); err == nil && errBody.Error.Message != "" {
			message = errBody.Error.Message
		}

		return nil, &UploadError{StatusCode: res.StatusCode, Message: message}
	}

	var result UploadResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("could not decode media host response: %w", err)
	}

	return &result, nil
}

func validateUpload(v *common.Validator, contentType string, size int64, kind Kind) {
	v.Check(allowedTypes[kind][contentType], "file", "unsupported file type")

	limit := int64(maxImageSize)
	if kind == KindDocument {
		limit = maxDocumentSize
	}

	v.Check(size > 0, "file", "must not be empty")
	v.Check(size <= limit, "file", fmt.Sprintf("must not be larger than %d bytes", limit))
}
