package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lounnaci/gestion-eau/internal/entity"
)

// DocumentRepository is the generic keyed store behind the CRUD facade.
// Documents are opaque JSON upserted by (collection, id); last write wins.
type DocumentRepository struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) List(ctx context.Context, collection string) ([]entity.Document, error) {
	q := `
		SELECT doc
		FROM documents
		WHERE collection = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, q, collection)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var docs []entity.Document

	for rows.Next() {
		var raw []byte

		err := rows.Scan(&raw)
		if err != nil {
			return nil, err
		}

		var doc entity.Document

		err = json.Unmarshal(raw, &doc)
		if err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}

		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (r *DocumentRepository) Save(ctx context.Context, collection string, doc entity.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	q := `
		INSERT INTO documents (collection, id, doc, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (collection, id) DO UPDATE SET
			doc = EXCLUDED.doc,
			updated_at = now()
	`

	_, err = r.db.Exec(ctx, q, collection, doc.ID(), raw)
	if err != nil {
		return err
	}

	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, collection, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *DocumentRepository) Count(ctx context.Context, collection string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM documents WHERE collection = $1`, collection).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// NextRequestID allocates the next sequential work-request number scoped by
// (centre prefix, year) among ids already in final "NNNN/prefix/year" form.
func (r *DocumentRepository) NextRequestID(ctx context.Context, prefix, year string) (string, error) {
	var maxNum int

	q := `
		SELECT COALESCE(MAX(split_part(id, '/', 1)::int), 0)
		FROM documents
		WHERE collection = 'requests'
		  AND split_part(id, '/', 2) = $1
		  AND split_part(id, '/', 3) = $2
		  AND split_part(id, '/', 1) ~ '^[0-9]+$'
	`

	err := r.db.QueryRow(ctx, q, prefix, year).Scan(&maxNum)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%04d/%s/%s", maxNum+1, prefix, year), nil
}

// CountAdmins counts administrator users other than excludeID, for the
// single-administrator rule on the users collection.
func (r *DocumentRepository) CountAdmins(ctx context.Context, excludeID string) (int, error) {
	var count int

	q := `
		SELECT COUNT(*)
		FROM documents
		WHERE collection = 'users'
		  AND doc ->> 'role' = $1
		  AND id <> $2
	`

	err := r.db.QueryRow(ctx, q, entity.RoleAdministrator, excludeID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
