package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/validators"
	"github.com/MKhiriev/go-futures-backend/models"
)

const uploadStatusProcessed = "processed"

type uploadService struct {
	logger *logger.Logger
}

func NewUploadService(logger *logger.Logger) UploadService {
	return &uploadService{logger: logger}
}

// Upload sanitizes the filename and measures data, which must be a string
// or an array. The size of a string is its length in characters; the size
// of an array is the length of its JSON encoding.
func (s *uploadService) Upload(ctx context.Context, filename, data validators.Value) (models.UploadResult, error) {
	rawName, ok := filename.Str()
	if !ok {
		return models.UploadResult{}, &validators.ValidationError{
			Kind:    validators.ErrInvalidType,
			Message: "Filename must be a string",
		}
	}

	name, err := validators.SanitizeFilename(rawName)
	if err != nil {
		return models.UploadResult{}, err
	}

	size, err := dataSize(data)
	if err != nil {
		return models.UploadResult{}, err
	}

	logger.FromContext(ctx).Info().Str("filename", name).Int("size", size).Msg("file uploaded successfully")

	return models.UploadResult{
		Filename: name,
		Size:     size,
		Status:   uploadStatusProcessed,
	}, nil
}

func dataSize(data validators.Value) (int, error) {
	switch data.Kind() {
	case validators.KindString:
		str, _ := data.Str()
		return utf8.RuneCountInString(str), nil
	case validators.KindArray:
		encoded, err := json.Marshal(data)
		if err != nil {
			return 0, fmt.Errorf("error measuring upload data: %w", err)
		}
		return len(encoded), nil
	default:
		return 0, &validators.ValidationError{
			Kind:    validators.ErrInvalidType,
			Message: "Invalid file data format",
		}
	}
}

// fileType derives the metrics label of an upload from the extension of
// the client-supplied name, before sanitization turns dots into underscores.
func fileType(filename validators.Value) string {
	name, _ := filename.Str()

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	ext = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, ext)

	if ext == "" {
		return "unknown"
	}
	return ext
}
