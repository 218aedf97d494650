package article

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/russross/blackfriday/v2"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/pagination"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/slugify"
)

const (
	relatedArticlesLimit = 4
	trendingLimit        = 5
	authorArticlesLimit  = 10
)

type Service struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	commentRepo  repository.CommentRepository
	authorRepo   repository.AuthorRepository
}

func NewService(
	articleRepo repository.ArticleRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	commentRepo repository.CommentRepository,
	authorRepo repository.AuthorRepository,
) *Service {
	return &Service{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		commentRepo:  commentRepo,
		authorRepo:   authorRepo,
	}
}

type CreateInput struct {
	AuthorID        uuid.UUID
	CategoryID      uuid.UUID
	Title           string
	Subtitle        string
	Content         string
	Excerpt         string
	Tags            []string
	IsFeatured      bool
	IsBreaking      bool
	MetaDescription string
	MetaKeywords    string
	Publish         bool
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Article, error) {
	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	article := entity.NewArticle(input.AuthorID, input.CategoryID,
		input.Title, input.Subtitle, input.Content, input.Excerpt)
	article.IsFeatured = input.IsFeatured
	article.IsBreaking = input.IsBreaking
	article.MetaDescription = input.MetaDescription
	article.MetaKeywords = input.MetaKeywords

	taken, err := s.articleRepo.SlugExists(ctx, article.Slug)
	if err != nil {
		return nil, fmt.Errorf("checking slug: %w", err)
	}
	if taken {
		article.Slug = slugify.MakeUnique(input.Title, article.ID.String()[:8])
	}

	if input.Publish {
		article.Publish()
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("creating article: %w", err)
	}

	if err := s.attachTags(ctx, article, input.Tags); err != nil {
		return nil, err
	}

	return article, nil
}

type UpdateInput struct {
	CategoryID      *uuid.UUID
	Title           *string
	Subtitle        *string
	Content         *string
	Excerpt         *string
	Tags            []string
	IsFeatured      *bool
	IsBreaking      *bool
	MetaDescription *string
	MetaKeywords    *string
}

func (s *Service) Update(ctx context.Context, authorID, articleID uuid.UUID, input UpdateInput) (*entity.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != authorID {
		return nil, domain.ErrForbidden
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		article.CategoryID = *input.CategoryID
	}
	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Subtitle != nil {
		article.Subtitle = *input.Subtitle
	}
	if input.Content != nil {
		article.Content = *input.Content
	}
	if input.Excerpt != nil {
		article.Excerpt = *input.Excerpt
	}
	if input.IsFeatured != nil {
		article.IsFeatured = *input.IsFeatured
	}
	if input.IsBreaking != nil {
		article.IsBreaking = *input.IsBreaking
	}
	if input.MetaDescription != nil {
		article.MetaDescription = *input.MetaDescription
	}
	if input.MetaKeywords != nil {
		article.MetaKeywords = *input.MetaKeywords
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("updating article: %w", err)
	}

	if input.Tags != nil {
		if err := s.attachTags(ctx, article, input.Tags); err != nil {
			return nil, err
		}
	}

	return article, nil
}

func (s *Service) Publish(ctx context.Context, authorID, articleID uuid.UUID) (*entity.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != authorID {
		return nil, domain.ErrForbidden
	}

	article.Publish()

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("publishing article: %w", err)
	}
	return article, nil
}

func (s *Service) attachTags(ctx context.Context, article *entity.Article, names []string) error {
	tagIDs := make([]uuid.UUID, 0, len(names))
	tags := make([]entity.Tag, 0, len(names))

	for _, name := range names {
		tag, err := s.tagRepo.Upsert(ctx, entity.NewTag(name))
		if err != nil {
			return fmt.Errorf("upserting tag: %w", err)
		}
		tagIDs = append(tagIDs, tag.ID)
		tags = append(tags, *tag)
	}

	if err := s.articleRepo.ReplaceTags(ctx, article.ID, tagIDs); err != nil {
		return fmt.Errorf("replacing tags: %w", err)
	}

	article.Tags = tags
	return nil
}

// Detail is the reader-facing article view: rendered body, related articles
// from the same category, and the approved comment thread.
type Detail struct {
	Article     *entity.Article
	ContentHTML string
	ReadingTime int
	Related     []entity.Article
	Comments    []entity.Comment
}

// GetBySlug serves the public article page. The view counter is bumped with
// an atomic storage-level delta and re-read afterwards, so concurrent reads
// never lose an increment.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Detail, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if !article.IsPublished() {
		return nil, domain.ErrArticleNotFound
	}

	if err := s.articleRepo.IncrementViews(ctx, article.ID); err != nil {
		return nil, fmt.Errorf("incrementing views: %w", err)
	}
	views, err := s.articleRepo.GetViews(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("reading views: %w", err)
	}
	article.ViewsCount = views

	if err := s.hydrate(ctx, article); err != nil {
		return nil, err
	}

	related, err := s.articleRepo.ListRelated(ctx, article.CategoryID, article.ID, relatedArticlesLimit)
	if err != nil {
		return nil, fmt.Errorf("loading related articles: %w", err)
	}

	comments, err := s.commentRepo.ListApprovedByArticle(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("loading comments: %w", err)
	}

	return &Detail{
		Article:     article,
		ContentHTML: string(blackfriday.Run([]byte(article.Content))),
		ReadingTime: article.ReadingTime(),
		Related:     related,
		Comments:    threadComments(comments),
	}, nil
}

func (s *Service) hydrate(ctx context.Context, article *entity.Article) error {
	author, err := s.authorRepo.GetByID(ctx, article.AuthorID)
	if err != nil && !errors.Is(err, domain.ErrAuthorNotFound) {
		return fmt.Errorf("loading author: %w", err)
	}
	article.Author = author

	category, err := s.categoryRepo.GetByID(ctx, article.CategoryID)
	if err != nil && !errors.Is(err, domain.ErrCategoryNotFound) {
		return fmt.Errorf("loading category: %w", err)
	}
	article.Category = category

	tags, err := s.tagRepo.ListByArticle(ctx, article.ID)
	if err != nil {
		return fmt.Errorf("loading tags: %w", err)
	}
	article.Tags = tags

	return nil
}

// threadComments nests replies under their top-level parents.
func threadComments(flat []entity.Comment) []entity.Comment {
	var roots []entity.Comment
	replies := make(map[uuid.UUID][]entity.Comment)

	for _, c := range flat {
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			replies[*c.ParentID] = append(replies[*c.ParentID], c)
		}
	}

	for i := range roots {
		roots[i].Replies = replies[roots[i].ID]
	}
	return roots
}

type ListInput struct {
	Page    int
	PerPage int
	Search  string
}

func (s *Service) ListPublished(ctx context.Context, input ListInput) ([]entity.Article, *pagination.Info, error) {
	return s.articleRepo.List(ctx, repository.ArticleListParams{
		Pagination:    pagination.NewParams(input.Page, input.PerPage),
		Search:        input.Search,
		PublishedOnly: true,
	})
}

func (s *Service) ListByCategory(ctx context.Context, slug string, page, perPage int) (*entity.Category, []entity.Article, *pagination.Info, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, nil, err
	}

	articles, pageInfo, err := s.articleRepo.List(ctx, repository.ArticleListParams{
		Pagination:    pagination.NewParams(page, perPage),
		CategoryID:    &category.ID,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return category, articles, pageInfo, nil
}

func (s *Service) ListByTag(ctx context.Context, slug string, page, perPage int) (*entity.Tag, []entity.Article, *pagination.Info, error) {
	tag, err := s.tagRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, nil, err
	}

	articles, pageInfo, err := s.articleRepo.List(ctx, repository.ArticleListParams{
		Pagination:    pagination.NewParams(page, perPage),
		TagID:         &tag.ID,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return tag, articles, pageInfo, nil
}

func (s *Service) ListByAuthor(ctx context.Context, authorID uuid.UUID) (*entity.Author, []entity.Article, error) {
	author, err := s.authorRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, nil, err
	}

	articles, _, err := s.articleRepo.List(ctx, repository.ArticleListParams{
		Pagination:    pagination.NewParams(1, authorArticlesLimit),
		AuthorID:      &author.ID,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, nil, err
	}
	return author, articles, nil
}

func (s *Service) Trending(ctx context.Context) ([]entity.Article, error) {
	articles, err := s.articleRepo.ListTrending(ctx, trendingLimit)
	if err != nil {
		return nil, fmt.Errorf("loading trending articles: %w", err)
	}

	for i := range articles {
		category, err := s.categoryRepo.GetByID(ctx, articles[i].CategoryID)
		if err != nil && !errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, fmt.Errorf("loading category: %w", err)
		}
		articles[i].Category = category
	}
	return articles, nil
}
