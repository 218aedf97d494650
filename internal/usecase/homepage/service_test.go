package homepage_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/cache"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/mocks"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/homepage"
)

const (
	homepageTTL = 10 * time.Minute
	globalTTL   = 15 * time.Minute
)

type homepageMocks struct {
	articleRepo  *mocks.MockArticleRepository
	categoryRepo *mocks.MockCategoryRepository
	tagRepo      *mocks.MockTagRepository
	store        *mocks.MockStore
}

func newHomepageService(ctrl *gomock.Controller) (*homepage.Service, homepageMocks) {
	m := homepageMocks{
		articleRepo:  mocks.NewMockArticleRepository(ctrl),
		categoryRepo: mocks.NewMockCategoryRepository(ctrl),
		tagRepo:      mocks.NewMockTagRepository(ctrl),
		store:        mocks.NewMockStore(ctrl),
	}
	svc := homepage.NewService(m.articleRepo, m.categoryRepo, m.tagRepo, m.store, homepageTTL, globalTTL)
	return svc, m
}

func TestService_Homepage(t *testing.T) {
	t.Run("serves cached aggregate without touching repositories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newHomepageService(ctrl)

		ctx := context.Background()
		cached, err := json.Marshal(homepage.HomepageData{
			FeaturedArticles: []entity.Article{{Title: "Cached Story"}},
		})
		require.NoError(t, err)

		m.store.EXPECT().Get(ctx, "homepage_data").Return(cached, nil)

		data, err := svc.Homepage(ctx)

		require.NoError(t, err)
		require.Len(t, data.FeaturedArticles, 1)
		assert.Equal(t, "Cached Story", data.FeaturedArticles[0].Title)
	})

	t.Run("computes and caches on miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newHomepageService(ctrl)

		ctx := context.Background()
		featured := []entity.Article{{Title: "Featured"}}
		breaking := []entity.Article{{Title: "Breaking"}}
		categories := []entity.Category{{Name: "World", ArticleCount: 7}}
		tags := []entity.Tag{{Name: "Economy"}}

		m.store.EXPECT().Get(ctx, "homepage_data").Return(nil, cache.ErrCacheMiss)
		m.articleRepo.EXPECT().ListFeatured(ctx, 5).Return(featured, nil)
		m.articleRepo.EXPECT().ListBreaking(ctx, 3).Return(breaking, nil)
		m.categoryRepo.EXPECT().ListActive(ctx, 0).Return(categories, nil)
		m.tagRepo.EXPECT().ListPopular(ctx, 10).Return(tags, nil)
		m.store.EXPECT().Set(ctx, "homepage_data", gomock.Any(), homepageTTL).Return(nil)

		data, err := svc.Homepage(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Featured", data.FeaturedArticles[0].Title)
		assert.Equal(t, "Breaking", data.BreakingNews[0].Title)
		assert.Equal(t, 7, data.Categories[0].ArticleCount)
		assert.Equal(t, "Economy", data.PopularTags[0].Name)
	})

	t.Run("still serves when the cache write fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newHomepageService(ctrl)

		ctx := context.Background()

		m.store.EXPECT().Get(ctx, "homepage_data").Return(nil, cache.ErrCacheMiss)
		m.articleRepo.EXPECT().ListFeatured(ctx, 5).Return(nil, nil)
		m.articleRepo.EXPECT().ListBreaking(ctx, 3).Return(nil, nil)
		m.categoryRepo.EXPECT().ListActive(ctx, 0).Return(nil, nil)
		m.tagRepo.EXPECT().ListPopular(ctx, 10).Return(nil, nil)
		m.store.EXPECT().Set(ctx, "homepage_data", gomock.Any(), homepageTTL).Return(assert.AnError)

		_, err := svc.Homepage(ctx)

		require.NoError(t, err)
	})
}

func TestService_GlobalContext(t *testing.T) {
	t.Run("uses its own key and TTL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newHomepageService(ctrl)

		ctx := context.Background()
		categories := []entity.Category{{Name: "Sports"}}

		m.store.EXPECT().Get(ctx, "global_context_data").Return(nil, cache.ErrCacheMiss)
		m.categoryRepo.EXPECT().ListActive(ctx, 8).Return(categories, nil)
		m.articleRepo.EXPECT().ListBreaking(ctx, 5).Return(nil, nil)
		m.store.EXPECT().Set(ctx, "global_context_data", gomock.Any(), globalTTL).Return(nil)

		data, err := svc.GlobalContext(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Sports", data.NavCategories[0].Name)
	})
}

func TestService_Invalidate(t *testing.T) {
	t.Run("drops both keys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newHomepageService(ctrl)

		ctx := context.Background()
		m.store.EXPECT().Delete(ctx, "homepage_data").Return(nil)
		m.store.EXPECT().Delete(ctx, "global_context_data").Return(nil)

		require.NoError(t, svc.Invalidate(ctx))
	})
}
