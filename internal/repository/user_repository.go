package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lounnaci/gestion-eau/internal/entity"
)

// UserRepository reads the users collection as credential records. Usernames
// are assigned once at creation; the store itself enforces nothing beyond the
// (collection, id) key.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (entity.User, error) {
	var (
		user entity.User
		raw  []byte
	)

	q := `
		SELECT id, doc
		FROM documents
		WHERE collection = 'users' AND doc ->> 'username' = $1
		LIMIT 1
	`

	err := r.db.QueryRow(ctx, q, username).Scan(&user.ID, &raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, entity.ErrNotFound
		}

		return user, err
	}

	err = json.Unmarshal(raw, &user.Doc)
	if err != nil {
		return user, fmt.Errorf("decode user document: %w", err)
	}

	user.Username = user.Doc.Field("username")
	user.Password = user.Doc.Field("password")
	user.Role = user.Doc.Field("role")

	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	q := `
		SELECT id, doc
		FROM documents
		WHERE collection = 'users'
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var users []entity.User

	for rows.Next() {
		var (
			user entity.User
			raw  []byte
		)

		err := rows.Scan(&user.ID, &raw)
		if err != nil {
			return nil, err
		}

		err = json.Unmarshal(raw, &user.Doc)
		if err != nil {
			return nil, fmt.Errorf("decode user document: %w", err)
		}

		user.Username = user.Doc.Field("username")
		user.Password = user.Doc.Field("password")
		user.Role = user.Doc.Field("role")

		users = append(users, user)
	}

	return users, rows.Err()
}

// SetPassword rewrites only the password field of an existing user document,
// preserving everything else the client stored.
func (r *UserRepository) SetPassword(ctx context.Context, id, hashed string) error {
	q := `
		UPDATE documents
		SET doc = jsonb_set(doc, '{password}', to_jsonb($2::text)),
		    updated_at = now()
		WHERE collection = 'users' AND id = $1
	`

	tag, err := r.db.Exec(ctx, q, id, hashed)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
