package homepage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/cache"
	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
)

const (
	homepageCacheKey      = "homepage_data"
	globalContextCacheKey = "global_context_data"

	featuredLimit      = 5
	breakingLimit      = 3
	popularTagsLimit   = 10
	navCategoriesLimit = 8
	tickerLimit        = 5
)

// HomepageData is the aggregate behind the landing page. It is cached as a
// single unit so one expiry recomputes everything together.
type HomepageData struct {
	FeaturedArticles []entity.Article  `json:"featured_articles"`
	BreakingNews     []entity.Article  `json:"breaking_news"`
	Categories       []entity.Category `json:"categories"`
	PopularTags      []entity.Tag      `json:"popular_tags"`
}

// GlobalContextData backs the navigation chrome shared by every page.
type GlobalContextData struct {
	NavCategories []entity.Category `json:"nav_categories"`
	BreakingNews  []entity.Article  `json:"breaking_news"`
}

type Service struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	store        cache.Store
	homepageTTL  time.Duration
	globalTTL    time.Duration
}

func NewService(
	articleRepo repository.ArticleRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	store cache.Store,
	homepageTTL, globalTTL time.Duration,
) *Service {
	return &Service{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		store:        store,
		homepageTTL:  homepageTTL,
		globalTTL:    globalTTL,
	}
}

func (s *Service) Homepage(ctx context.Context) (*HomepageData, error) {
	payload, err := cache.GetOrCompute(ctx, s.store, homepageCacheKey, s.homepageTTL, func(ctx context.Context) ([]byte, error) {
		data, err := s.buildHomepage(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(data)
	})
	if err != nil {
		return nil, err
	}

	var data HomepageData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("decoding homepage cache entry: %w", err)
	}
	return &data, nil
}

func (s *Service) GlobalContext(ctx context.Context) (*GlobalContextData, error) {
	payload, err := cache.GetOrCompute(ctx, s.store, globalContextCacheKey, s.globalTTL, func(ctx context.Context) ([]byte, error) {
		data, err := s.buildGlobalContext(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(data)
	})
	if err != nil {
		return nil, err
	}

	var data GlobalContextData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("decoding global context cache entry: %w", err)
	}
	return &data, nil
}

// Invalidate drops both cached aggregates. Called after content changes that
// should show up before the TTL would expire them.
func (s *Service) Invalidate(ctx context.Context) error {
	if err := s.store.Delete(ctx, homepageCacheKey); err != nil {
		return fmt.Errorf("invalidating homepage cache: %w", err)
	}
	if err := s.store.Delete(ctx, globalContextCacheKey); err != nil {
		return fmt.Errorf("invalidating global context cache: %w", err)
	}
	return nil
}

func (s *Service) buildHomepage(ctx context.Context) (*HomepageData, error) {
	featured, err := s.articleRepo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, fmt.Errorf("loading featured articles: %w", err)
	}

	breaking, err := s.articleRepo.ListBreaking(ctx, breakingLimit)
	if err != nil {
		return nil, fmt.Errorf("loading breaking news: %w", err)
	}

	categories, err := s.categoryRepo.ListActive(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	tags, err := s.tagRepo.ListPopular(ctx, popularTagsLimit)
	if err != nil {
		return nil, fmt.Errorf("loading popular tags: %w", err)
	}

	return &HomepageData{
		FeaturedArticles: featured,
		BreakingNews:     breaking,
		Categories:       categories,
		PopularTags:      tags,
	}, nil
}

func (s *Service) buildGlobalContext(ctx context.Context) (*GlobalContextData, error) {
	categories, err := s.categoryRepo.ListActive(ctx, navCategoriesLimit)
	if err != nil {
		return nil, fmt.Errorf("loading nav categories: %w", err)
	}

	breaking, err := s.articleRepo.ListBreaking(ctx, tickerLimit)
	if err != nil {
		return nil, fmt.Errorf("loading breaking ticker: %w", err)
	}

	return &GlobalContextData{
		NavCategories: categories,
		BreakingNews:  breaking,
	}, nil
}
