package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/brandkitai/brandkit/internal/domain/brandkit"
	"github.com/brandkitai/brandkit/internal/domain/user"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
)

// BrandKitRepository implements brandkit.Repository
type BrandKitRepository struct {
	db *sql.DB
}

// NewBrandKitRepository creates a new brand-kit repository
func NewBrandKitRepository(db *sql.DB) brandkit.Repository {
	return &BrandKitRepository{db: db}
}

const kitColumns = `
	id, user_id, business_name, industry, description, vibe, target_audience,
	tagline, brand_summary, brand_voice, colors, fonts,
	website_hero, website_subheading, website_about, website_services, website_cta,
	instagram_bio, tiktok_bio, twitter_bio, logo_image_url, logo_prompt_used,
	created_at, updated_at
`

// CreateWithQuota inserts a kit and increments the owner's brand-kit count in
// one transaction. The owner row is re-read inside the transaction so racing
// creates by the same user cannot jointly exceed the free-plan limit.
func (r *BrandKitRepository) CreateWithQuota(ctx context.Context, k *brandkit.BrandKit) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.DatabaseError("Failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	var plan string
	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT plan, brand_kit_count FROM users WHERE id = ?`, k.UserID,
	).Scan(&plan, &count)
	if err == sql.ErrNoRows {
		return 0, errors.NotFound("User")
	}
	if err != nil {
		return 0, errors.DatabaseError("Failed to read owner", err)
	}

	if plan != user.PlanPro && count >= user.FreePlanKitLimit {
		return 0, errors.QuotaExceeded("Free plan limit reached. Upgrade to Pro.")
	}

	now := time.Now()
	k.CreatedAt = now
	k.UpdatedAt = now
	if k.Colors == nil {
		k.Colors = []brandkit.Color{}
	}
	if k.Fonts == nil {
		k.Fonts = []brandkit.Font{}
	}

	vibe, err := json.Marshal(k.Vibe)
	if err != nil {
		return 0, errors.DatabaseError("Failed to encode vibe", err)
	}
	colors, err := json.Marshal(k.Colors)
	if err != nil {
		return 0, errors.DatabaseError("Failed to encode colors", err)
	}
	fonts, err := json.Marshal(k.Fonts)
	if err != nil {
		return 0, errors.DatabaseError("Failed to encode fonts", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO brand_kits (
			user_id, business_name, industry, description, vibe, target_audience,
			colors, fonts, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		k.UserID, k.BusinessName, k.Industry, k.Description, string(vibe), k.TargetAudience,
		string(colors), string(fonts), now.Unix(), now.Unix(),
	)
	if err != nil {
		return 0, errors.DatabaseError("Failed to create brand kit", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.DatabaseError("Failed to get brand kit ID", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET brand_kit_count = brand_kit_count + 1, updated_at = ? WHERE id = ?`,
		now.Unix(), k.UserID,
	); err != nil {
		return 0, errors.DatabaseError("Failed to update owner kit count", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.DatabaseError("Failed to commit brand kit", err)
	}

	k.ID = id
	return id, nil
}

// GetByID retrieves a kit by id
func (r *BrandKitRepository) GetByID(ctx context.Context, id int64) (*brandkit.BrandKit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+kitColumns+` FROM brand_kits WHERE id = ?`, id)
	k, err := scanKit(row)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Brand kit")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get brand kit", err)
	}
	return k, nil
}

// ListByUser returns all kits owned by a user, newest first
func (r *BrandKitRepository) ListByUser(ctx context.Context, userID int64) ([]*brandkit.BrandKit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+kitColumns+` FROM brand_kits WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list brand kits", err)
	}
	defer rows.Close()

	kits := []*brandkit.BrandKit{}
	for rows.Next() {
		k, err := scanKit(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan brand kit", err)
		}
		kits = append(kits, k)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate brand kits", err)
	}

	return kits, nil
}

// ApplyPatch merges generated fields onto a kit. Nil patch fields leave the
// stored value untouched; only the merged result is written back.
func (r *BrandKitRepository) ApplyPatch(ctx context.Context, id int64, patch *brandkit.GeneratedPatch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("Failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `SELECT `+kitColumns+` FROM brand_kits WHERE id = ?`, id)
	k, err := scanKit(row)
	if err == sql.ErrNoRows {
		return errors.NotFound("Brand kit")
	}
	if err != nil {
		return errors.DatabaseError("Failed to get brand kit", err)
	}

	patch.Apply(k)
	k.UpdatedAt = time.Now()

	colors, err := json.Marshal(k.Colors)
	if err != nil {
		return errors.DatabaseError("Failed to encode colors", err)
	}
	fonts, err := json.Marshal(k.Fonts)
	if err != nil {
		return errors.DatabaseError("Failed to encode fonts", err)
	}
	services, err := marshalNullable(k.WebsiteServices)
	if err != nil {
		return errors.DatabaseError("Failed to encode services", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE brand_kits SET
			tagline = ?, brand_summary = ?, brand_voice = ?,
			colors = ?, fonts = ?,
			website_hero = ?, website_subheading = ?, website_about = ?, website_services = ?, website_cta = ?,
			instagram_bio = ?, tiktok_bio = ?, twitter_bio = ?,
			logo_image_url = ?, logo_prompt_used = ?,
			updated_at = ?
		WHERE id = ?
	`,
		k.Tagline, k.BrandSummary, k.BrandVoice,
		string(colors), string(fonts),
		k.WebsiteHero, k.WebsiteSubheading, k.WebsiteAbout, services, k.WebsiteCTA,
		k.InstagramBio, k.TiktokBio, k.TwitterBio,
		k.LogoImageURL, k.LogoPromptUsed,
		k.UpdatedAt.Unix(), id,
	); err != nil {
		return errors.DatabaseError("Failed to patch brand kit", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.DatabaseError("Failed to commit patch", err)
	}
	return nil
}

// SetGeneratedField writes one narrative field and refreshes the update timestamp
func (r *BrandKitRepository) SetGeneratedField(ctx context.Context, id int64, field brandkit.GeneratableField, value string) error {
	var column string
	switch field {
	case brandkit.FieldTagline:
		column = "tagline"
	case brandkit.FieldBrandSummary:
		column = "brand_summary"
	case brandkit.FieldBrandVoice:
		column = "brand_voice"
	default:
		return errors.BadRequest("Unknown generated field: " + string(field))
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE brand_kits SET `+column+` = ?, updated_at = ? WHERE id = ?`,
		value, time.Now().Unix(), id,
	)
	if err != nil {
		return errors.DatabaseError("Failed to store generated field", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Brand kit")
	}
	return nil
}

// scanner matches both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanKit(s scanner) (*brandkit.BrandKit, error) {
	var k brandkit.BrandKit
	var industry, description, targetAudience sql.NullString
	var tagline, brandSummary, brandVoice sql.NullString
	var hero, subheading, about, services, cta sql.NullString
	var instagram, tiktok, twitter sql.NullString
	var logoURL, logoPrompt sql.NullString
	var vibe, colors, fonts string
	var createdAt, updatedAt int64

	err := s.Scan(
		&k.ID, &k.UserID, &k.BusinessName, &industry, &description, &vibe, &targetAudience,
		&tagline, &brandSummary, &brandVoice, &colors, &fonts,
		&hero, &subheading, &about, &services, &cta,
		&instagram, &tiktok, &twitter, &logoURL, &logoPrompt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	k.Industry = nullableString(industry)
	k.Description = nullableString(description)
	k.TargetAudience = nullableString(targetAudience)
	k.Tagline = nullableString(tagline)
	k.BrandSummary = nullableString(brandSummary)
	k.BrandVoice = nullableString(brandVoice)
	k.WebsiteHero = nullableString(hero)
	k.WebsiteSubheading = nullableString(subheading)
	k.WebsiteAbout = nullableString(about)
	k.WebsiteCTA = nullableString(cta)
	k.InstagramBio = nullableString(instagram)
	k.TiktokBio = nullableString(tiktok)
	k.TwitterBio = nullableString(twitter)
	k.LogoImageURL = nullableString(logoURL)
	k.LogoPromptUsed = nullableString(logoPrompt)

	if err := json.Unmarshal([]byte(vibe), &k.Vibe); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(colors), &k.Colors); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(fonts), &k.Fonts); err != nil {
		return nil, err
	}
	if services.Valid && services.String != "" {
		if err := json.Unmarshal([]byte(services.String), &k.WebsiteServices); err != nil {
			return nil, err
		}
	}
	if k.Colors == nil {
		k.Colors = []brandkit.Color{}
	}
	if k.Fonts == nil {
		k.Fonts = []brandkit.Font{}
	}

	k.CreatedAt = time.Unix(createdAt, 0)
	k.UpdatedAt = time.Unix(updatedAt, 0)

	return &k, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func marshalNullable(v []string) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
