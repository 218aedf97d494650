package request

type UpdateSettingsRequest struct {
	SiteName        string `json:"site_name" binding:"required,max=100"`
	SiteDescription string `json:"site_description" binding:"omitempty,max=500"`
	LogoURL         string `json:"logo_url" binding:"omitempty,url"`
	FaviconURL      string `json:"favicon_url" binding:"omitempty,url"`

	ContactEmail   string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone   string `json:"contact_phone" binding:"omitempty,max=30"`
	ContactAddress string `json:"contact_address" binding:"omitempty,max=255"`

	FacebookURL  string `json:"facebook_url" binding:"omitempty,url"`
	TwitterURL   string `json:"twitter_url" binding:"omitempty,url"`
	InstagramURL string `json:"instagram_url" binding:"omitempty,url"`
	YoutubeURL   string `json:"youtube_url" binding:"omitempty,url"`

	MetaDescription string `json:"meta_description" binding:"omitempty,max=160"`
	MetaKeywords    string `json:"meta_keywords" binding:"omitempty,max=255"`

	GoogleAnalyticsID string `json:"google_analytics_id" binding:"omitempty,max=30"`
}
