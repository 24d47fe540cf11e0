package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/brandkitai/brandkit/internal/domain/user"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
)

// UserRepository implements user.Repository
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) user.Repository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	query := `
		INSERT INTO users (identity_key, email, name, plan, brand_kit_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		u.IdentityKey, u.Email, u.Name, u.Plan, u.BrandKitCount, now.Unix(), now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get user ID", err)
	}

	u.ID = id
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT id, identity_key, email, name, plan, brand_kit_count, created_at, updated_at
		FROM users WHERE id = ?
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByIdentityKey retrieves a user by the identity provider's subject id
func (r *UserRepository) GetByIdentityKey(ctx context.Context, identityKey string) (*user.User, error) {
	query := `
		SELECT id, identity_key, email, name, plan, brand_kit_count, created_at, updated_at
		FROM users WHERE identity_key = ?
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, identityKey))
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	u.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET email = ?, name = ?, plan = ?, brand_kit_count = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		u.Email, u.Name, u.Plan, u.BrandKitCount, u.UpdatedAt.Unix(), u.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update user", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}

	if rows == 0 {
		return errors.NotFound("User")
	}

	return nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*user.User, error) {
	var u user.User
	var name sql.NullString
	var createdAt, updatedAt int64

	err := row.Scan(
		&u.ID, &u.IdentityKey, &u.Email, &name, &u.Plan, &u.BrandKitCount, &createdAt, &updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("User")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get user", err)
	}

	if name.Valid {
		u.Name = &name.String
	}
	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updatedAt, 0)

	return &u, nil
}
