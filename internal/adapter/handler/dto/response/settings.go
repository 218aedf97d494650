package response

import "github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"

type SiteSettingsResponse struct {
	SiteName        string `json:"site_name"`
	SiteDescription string `json:"site_description,omitempty"`
	LogoURL         string `json:"logo_url,omitempty"`
	FaviconURL      string `json:"favicon_url,omitempty"`

	ContactEmail   string `json:"contact_email,omitempty"`
	ContactPhone   string `json:"contact_phone,omitempty"`
	ContactAddress string `json:"contact_address,omitempty"`

	FacebookURL  string `json:"facebook_url,omitempty"`
	TwitterURL   string `json:"twitter_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
	YoutubeURL   string `json:"youtube_url,omitempty"`

	MetaDescription string `json:"meta_description,omitempty"`
	MetaKeywords    string `json:"meta_keywords,omitempty"`

	GoogleAnalyticsID string `json:"google_analytics_id,omitempty"`
}

func SiteSettingsFromEntity(s *entity.SiteSettings) SiteSettingsResponse {
	return SiteSettingsResponse{
		SiteName:          s.SiteName,
		SiteDescription:   s.SiteDescription,
		LogoURL:           s.LogoURL,
		FaviconURL:        s.FaviconURL,
		ContactEmail:      s.ContactEmail,
		ContactPhone:      s.ContactPhone,
		ContactAddress:    s.ContactAddress,
		FacebookURL:       s.FacebookURL,
		TwitterURL:        s.TwitterURL,
		InstagramURL:      s.InstagramURL,
		YoutubeURL:        s.YoutubeURL,
		MetaDescription:   s.MetaDescription,
		MetaKeywords:      s.MetaKeywords,
		GoogleAnalyticsID: s.GoogleAnalyticsID,
	}
}
