package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/article"
)

// ArticleResponse is the card-level view used in lists and feeds. The body
// is omitted; detail pages use ArticleDetailResponse.
type ArticleResponse struct {
	ID           uuid.UUID         `json:"id"`
	Title        string            `json:"title"`
	Slug         string            `json:"slug"`
	Subtitle     string            `json:"subtitle,omitempty"`
	Excerpt      string            `json:"excerpt,omitempty"`
	ThumbnailURL string            `json:"thumbnail_url,omitempty"`
	ImageURL     string            `json:"image_url,omitempty"`
	ImageAlt     string            `json:"image_alt,omitempty"`
	Status       string            `json:"status"`
	IsFeatured   bool              `json:"is_featured"`
	IsBreaking   bool              `json:"is_breaking"`
	ViewsCount   int               `json:"views_count"`
	ReadingTime  int               `json:"reading_time"`
	Category     *CategoryResponse `json:"category,omitempty"`
	Author       *AuthorResponse   `json:"author,omitempty"`
	Tags         []TagResponse     `json:"tags,omitempty"`
	PublishedAt  *time.Time        `json:"published_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

type ArticleDetailResponse struct {
	ArticleResponse
	Content         string            `json:"content"`
	ContentHTML     string            `json:"content_html"`
	MetaDescription string            `json:"meta_description,omitempty"`
	MetaKeywords    string            `json:"meta_keywords,omitempty"`
	Related         []ArticleResponse `json:"related_articles"`
	Comments        []CommentResponse `json:"comments"`
}

type ArticleListResponse struct {
	Articles   []ArticleResponse  `json:"articles"`
	Pagination PaginationResponse `json:"pagination"`
}

func ArticleFromEntity(a *entity.Article) ArticleResponse {
	resp := ArticleResponse{
		ID:           a.ID,
		Title:        a.Title,
		Slug:         a.Slug,
		Subtitle:     a.Subtitle,
		Excerpt:      a.Excerpt,
		ThumbnailURL: a.ThumbnailURL,
		ImageURL:     a.FeaturedImageURL,
		ImageAlt:     a.FeaturedImageAlt,
		Status:       string(a.Status),
		IsFeatured:   a.IsFeatured,
		IsBreaking:   a.IsBreaking,
		ViewsCount:   a.ViewsCount,
		ReadingTime:  a.ReadingTime(),
		PublishedAt:  a.PublishedAt,
		CreatedAt:    a.CreatedAt,
	}

	if a.Category != nil {
		cat := CategoryFromEntity(a.Category)
		resp.Category = &cat
	}
	if a.Author != nil {
		author := AuthorFromEntity(a.Author)
		resp.Author = &author
	}
	if len(a.Tags) > 0 {
		resp.Tags = TagsFromEntities(a.Tags)
	}

	return resp
}

func ArticlesFromEntities(articles []entity.Article) []ArticleResponse {
	result := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		result = append(result, ArticleFromEntity(&articles[i]))
	}
	return result
}

func ArticleDetailFromUsecase(d *article.Detail) ArticleDetailResponse {
	return ArticleDetailResponse{
		ArticleResponse: ArticleFromEntity(d.Article),
		Content:         d.Article.Content,
		ContentHTML:     d.ContentHTML,
		MetaDescription: d.Article.MetaDescription,
		MetaKeywords:    d.Article.MetaKeywords,
		Related:         ArticlesFromEntities(d.Related),
		Comments:        CommentsFromEntities(d.Comments),
	}
}
