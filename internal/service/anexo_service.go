package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/dindinapp/dindin-backend/internal/repository/storage"
	"github.com/google/uuid"
)

const (
	MaxAnexoSize = 10 * 1024 * 1024 // 10MB

	// DefaultURLExpiry is how long attachment retrieval URLs stay valid
	DefaultURLExpiry = 24 * time.Hour
)

var (
	ErrAnexoEmpty                = errors.New("anexo is empty")
	ErrAnexoTooLarge             = errors.New("anexo too large. Maximum size is 10MB")
	ErrAnexoStorageNotConfigured = errors.New("anexo storage not configured")
)

// AnexoService stores uploaded attachments and resolves their retrieval URLs
type AnexoService struct {
	storage   storage.AnexoRepository
	urlExpiry time.Duration
}

// NewAnexoService creates a new AnexoService
func NewAnexoService(storage storage.AnexoRepository) *AnexoService {
	return &AnexoService{
		storage:   storage,
		urlExpiry: DefaultURLExpiry,
	}
}

// IsEnabled indicates whether uploads are supported (storage configured).
func (s *AnexoService) IsEnabled() bool {
	return s != nil && s.storage != nil
}

// Upload stores the attachment bytes under a generated key and returns the
// key together with a retrievable URL. One store write per call; no retry.
func (s *AnexoService) Upload(ctx context.Context, data []byte, originalName string) (*domain.Anexo, error) {
	if !s.IsEnabled() {
		return nil, ErrAnexoStorageNotConfigured
	}
	if len(data) == 0 {
		return nil, ErrAnexoEmpty
	}
	if len(data) > MaxAnexoSize {
		return nil, ErrAnexoTooLarge
	}

	objectKey := generateObjectKey(originalName)
	contentType := contentTypeFor(originalName)

	if err := s.storage.Upload(ctx, objectKey, bytes.NewReader(data), contentType, int64(len(data))); err != nil {
		return nil, fmt.Errorf("failed to store anexo: %w", err)
	}

	url, err := s.storage.URLFor(ctx, objectKey, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve anexo URL: %w", err)
	}

	return &domain.Anexo{Nome: objectKey, URL: url}, nil
}

// URLFor resolves a fresh retrieval URL for a previously stored key
func (s *AnexoService) URLFor(ctx context.Context, objectKey string) (string, error) {
	if !s.IsEnabled() {
		return "", ErrAnexoStorageNotConfigured
	}
	return s.storage.URLFor(ctx, objectKey, s.urlExpiry)
}

// generateObjectKey prefixes the sanitized original name with a uuid so
// repeated uploads of the same file never collide.
func generateObjectKey(originalName string) string {
	base := filepath.Base(strings.TrimSpace(originalName))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "anexo"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("anexos/%s_%s", uuid.New().String(), base)
}

func contentTypeFor(originalName string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(originalName))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
