package documents

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-optimizer/internal/extract"
	"resume-optimizer/internal/shared/storage/object"
)

const uploadScope = "uploads"

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  DocumentsRepo
}

// Upload saves the file to object storage and records the document. Only PDF
// and DOCX uploads are accepted.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, fmt.Errorf("%w: file name required", ErrInvalidInput)
	}
	if !supportedExtension(fileName) {
		return Document{}, fmt.Errorf("%w: %s", extract.ErrUnsupportedFormat, filepath.Ext(fileName))
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, uploadScope, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, documentID string) (Document, error) {
	if documentID == "" {
		return Document{}, fmt.Errorf("%w: document id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, documentID)
}

// List returns stored documents newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Document, error) {
	return s.Repo.List(ctx, limit, offset)
}

// ExtractedText returns the plain text of a document, extracting it on first
// use and reusing the persisted copy afterward.
func (s *Service) ExtractedText(ctx context.Context, documentID string) (string, error) {
	doc, err := s.Get(ctx, documentID)
	if err != nil {
		return "", err
	}

	if doc.ExtractedTextKey != "" {
		body, err := s.Store.Open(ctx, doc.ExtractedTextKey)
		if err == nil {
			defer body.Close()
			raw, readErr := io.ReadAll(body)
			if readErr == nil {
				return string(raw), nil
			}
		}
		// Fall through and re-extract if the derived copy is unreadable.
	}

	text, err := extract.Text(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		return "", err
	}

	extractedKey := doc.StorageKey + ".extracted.txt"
	if err := s.Repo.UpdateExtraction(ctx, doc.ID, extractedKey, time.Now().UTC()); err != nil {
		return "", err
	}
	return text, nil
}

func supportedExtension(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf", ".docx":
		return true
	default:
		return false
	}
}
