package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lounnaci/gestion-eau/internal/entity"
)

const tempIDPrefix = "TEMP-"

// ListDocuments returns every document of a collection. The store is
// schemaless on purpose: documents go back to the client exactly as stored.
func (s *Service) ListDocuments(ctx context.Context, collection string) ([]entity.Document, error) {
	if !entity.KnownCollection(collection) {
		return nil, entity.ErrUnknownCollection
	}

	docs, err := s.docRepo.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	if docs == nil {
		docs = []entity.Document{}
	}

	return docs, nil
}

// SaveDocument upserts a document by its caller-supplied id, applying the two
// business rules the facade owns: sequential id allocation for work requests
// still carrying a placeholder id, and the single-administrator constraint on
// the users collection. Returns the id the document was stored under.
func (s *Service) SaveDocument(ctx context.Context, collection string, doc entity.Document) (string, error) {
	if !entity.KnownCollection(collection) {
		return "", entity.ErrUnknownCollection
	}

	id := doc.ID()
	if id == "" {
		return "", entity.ErrMissingID
	}

	// Leftover Mongo key from the previous backend; never stored.
	delete(doc, "_id")

	if collection == entity.CollectionRequests && strings.HasPrefix(id, tempIDPrefix) {
		newID, err := s.allocateRequestID(ctx, id)
		if err != nil {
			return "", err
		}

		if newID != "" {
			slog.InfoContext(ctx, "allocated request id", "temp_id", id, "id", newID)
			doc["id"] = newID
			id = newID
		}
	}

	if collection == entity.CollectionUsers && doc.Field("role") == entity.RoleAdministrator {
		admins, err := s.docRepo.CountAdmins(ctx, id)
		if err != nil {
			return "", fmt.Errorf("count administrators: %w", err)
		}

		if admins > 0 {
			return "", entity.ErrAdminExists
		}
	}

	err := s.docRepo.Save(ctx, collection, doc)
	if err != nil {
		return "", fmt.Errorf("save %s document: %w", collection, err)
	}

	return id, nil
}

// allocateRequestID resolves a "TEMP-<timestamp>-<prefix>-<year>" placeholder
// into the next "NNNN/prefix/year" number. A placeholder that does not parse
// is stored as is, matching the permissive behaviour of the store.
func (s *Service) allocateRequestID(ctx context.Context, tempID string) (string, error) {
	parts := strings.Split(tempID, "-")
	if len(parts) < 4 {
		return "", nil
	}

	prefix := parts[2]
	year := parts[3]

	newID, err := s.docRepo.NextRequestID(ctx, prefix, year)
	if err != nil {
		return "", fmt.Errorf("allocate request id: %w", err)
	}

	return newID, nil
}

func (s *Service) DeleteDocument(ctx context.Context, collection, id string) error {
	if !entity.KnownCollection(collection) {
		return entity.ErrUnknownCollection
	}

	err := s.docRepo.Delete(ctx, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s document: %w", collection, err)
	}

	return nil
}

// Stats counts documents per collection for the dashboard.
func (s *Service) Stats(ctx context.Context) (map[string]int, error) {
	stats := make(map[string]int, len(entity.Collections))

	for _, collection := range entity.Collections {
		count, err := s.docRepo.Count(ctx, collection)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", collection, err)
		}

		stats[collection] = count
	}

	return stats, nil
}
