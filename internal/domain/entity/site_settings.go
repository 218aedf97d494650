package entity

import "time"

// SiteSettings is a single-row table; the repository enforces one instance.
type SiteSettings struct {
	SiteName        string
	SiteDescription string
	LogoURL         string
	FaviconURL      string

	ContactEmail   string
	ContactPhone   string
	ContactAddress string

	FacebookURL  string
	TwitterURL   string
	InstagramURL string
	YoutubeURL   string

	MetaDescription string
	MetaKeywords    string

	GoogleAnalyticsID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func DefaultSiteSettings() *SiteSettings {
	now := time.Now().UTC()
	return &SiteSettings{
		SiteName:  "News Portal",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
