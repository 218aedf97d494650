package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

// SettingsRepo persists the single site_settings row. The table carries a
// CHECK(id = 1) so only one row can ever exist.
type SettingsRepo struct {
	pool *pgxpool.Pool
}

func NewSettingsRepo(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

func (r *SettingsRepo) Get(ctx context.Context) (*entity.SiteSettings, error) {
	query := `
		SELECT site_name, site_description, logo_url, favicon_url,
			   contact_email, contact_phone, contact_address,
			   facebook_url, twitter_url, instagram_url, youtube_url,
			   meta_description, meta_keywords, google_analytics_id,
			   created_at, updated_at
		FROM site_settings
		WHERE id = 1
	`
	var s entity.SiteSettings
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.SiteName, &s.SiteDescription, &s.LogoURL, &s.FaviconURL,
		&s.ContactEmail, &s.ContactPhone, &s.ContactAddress,
		&s.FacebookURL, &s.TwitterURL, &s.InstagramURL, &s.YoutubeURL,
		&s.MetaDescription, &s.MetaKeywords, &s.GoogleAnalyticsID,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("querying site settings: %w", err)
	}
	return &s, nil
}

func (r *SettingsRepo) Upsert(ctx context.Context, s *entity.SiteSettings) error {
	query := `
		INSERT INTO site_settings (
			id, site_name, site_description, logo_url, favicon_url,
			contact_email, contact_phone, contact_address,
			facebook_url, twitter_url, instagram_url, youtube_url,
			meta_description, meta_keywords, google_analytics_id,
			created_at, updated_at
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			site_description = EXCLUDED.site_description,
			logo_url = EXCLUDED.logo_url,
			favicon_url = EXCLUDED.favicon_url,
			contact_email = EXCLUDED.contact_email,
			contact_phone = EXCLUDED.contact_phone,
			contact_address = EXCLUDED.contact_address,
			facebook_url = EXCLUDED.facebook_url,
			twitter_url = EXCLUDED.twitter_url,
			instagram_url = EXCLUDED.instagram_url,
			youtube_url = EXCLUDED.youtube_url,
			meta_description = EXCLUDED.meta_description,
			meta_keywords = EXCLUDED.meta_keywords,
			google_analytics_id = EXCLUDED.google_analytics_id,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		s.SiteName, s.SiteDescription, s.LogoURL, s.FaviconURL,
		s.ContactEmail, s.ContactPhone, s.ContactAddress,
		s.FacebookURL, s.TwitterURL, s.InstagramURL, s.YoutubeURL,
		s.MetaDescription, s.MetaKeywords, s.GoogleAnalyticsID,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting site settings: %w", err)
	}
	return nil
}
