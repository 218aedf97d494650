package upload_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/storage"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/mocks"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/upload"
)

type uploadMocks struct {
	articleRepo *mocks.MockArticleRepository
	authorRepo  *mocks.MockAuthorRepository
	processor   *mocks.MockImageProcessor
	store       *mocks.MockImageStorage
}

func newUploadService(ctrl *gomock.Controller) (*upload.Service, uploadMocks) {
	m := uploadMocks{
		articleRepo: mocks.NewMockArticleRepository(ctrl),
		authorRepo:  mocks.NewMockAuthorRepository(ctrl),
		processor:   mocks.NewMockImageProcessor(ctrl),
		store:       mocks.NewMockImageStorage(ctrl),
	}
	svc := upload.NewService(m.articleRepo, m.authorRepo, m.processor, m.store, zap.NewNop())
	return svc, m
}

func processed(data string) *storage.ProcessedImage {
	return &storage.ProcessedImage{
		Data:        []byte(data),
		Width:       1200,
		Height:      800,
		Size:        int64(len(data)),
		ContentType: "image/jpeg",
	}
}

func TestService_SetFeaturedImage(t *testing.T) {
	t.Run("stores optimized image and derived thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUploadService(ctrl)

		ctx := context.Background()
		authorID := uuid.New()
		a := entity.NewArticle(authorID, uuid.New(), "Story", "", "body", "")

		m.articleRepo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		m.processor.EXPECT().Optimize(gomock.Any()).Return(processed("optimized"), nil)
		m.processor.EXPECT().Thumbnail(gomock.Any()).Return(processed("thumb"), nil)

		var mainKey, thumbKey string
		m.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ any, _ string, _ int64) error {
				mainKey = key
				return nil
			})
		m.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ any, _ string, _ int64) error {
				thumbKey = key
				return nil
			})
		m.store.EXPECT().GetURL(gomock.Any()).Return("https://cdn.example.com/img").Times(2)
		m.articleRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		updated, err := svc.SetFeaturedImage(ctx, authorID, a.ID, bytes.NewReader([]byte("raw")), "My Photo.JPG", "a photo")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(mainKey, "articles/"))
		assert.Contains(t, mainKey, "My_Photo.jpg")
		assert.Contains(t, thumbKey, "_thumb.jpg")
		assert.Equal(t, mainKey, updated.FeaturedImageKey)
		assert.Equal(t, thumbKey, updated.ThumbnailKey)
		assert.Equal(t, "a photo", updated.FeaturedImageAlt)
	})

	t.Run("keeps previous images when optimization fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUploadService(ctrl)

		ctx := context.Background()
		authorID := uuid.New()
		a := entity.NewArticle(authorID, uuid.New(), "Story", "", "body", "")
		a.SetFeaturedImage("https://cdn.example.com/old", "articles/2026/01/old.jpg", "old")

		m.articleRepo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		m.processor.EXPECT().Optimize(gomock.Any()).Return(nil, errors.New("corrupt input"))

		updated, err := svc.SetFeaturedImage(ctx, authorID, a.ID, bytes.NewReader(nil), "broken.jpg", "")

		require.NoError(t, err)
		assert.Equal(t, "articles/2026/01/old.jpg", updated.FeaturedImageKey)
	})

	t.Run("ships without thumbnail when derivation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUploadService(ctrl)

		ctx := context.Background()
		authorID := uuid.New()
		a := entity.NewArticle(authorID, uuid.New(), "Story", "", "body", "")

		m.articleRepo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		m.processor.EXPECT().Optimize(gomock.Any()).Return(processed("optimized"), nil)
		m.processor.EXPECT().Thumbnail(gomock.Any()).Return(nil, errors.New("resize failed"))
		m.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).Return(nil)
		m.store.EXPECT().GetURL(gomock.Any()).Return("https://cdn.example.com/img")
		m.articleRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		updated, err := svc.SetFeaturedImage(ctx, authorID, a.ID, bytes.NewReader([]byte("raw")), "photo.png", "")

		require.NoError(t, err)
		assert.NotEmpty(t, updated.FeaturedImageKey)
		assert.Empty(t, updated.ThumbnailKey)
		assert.False(t, updated.HasThumbnail())
	})

	t.Run("deletes the replaced image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUploadService(ctrl)

		ctx := context.Background()
		authorID := uuid.New()
		a := entity.NewArticle(authorID, uuid.New(), "Story", "", "body", "")
		a.SetFeaturedImage("https://cdn.example.com/old", "articles/2026/01/old.jpg", "")
		a.SetThumbnail("https://cdn.example.com/old_thumb", "articles/2026/01/old_thumb.jpg")

		m.articleRepo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		m.processor.EXPECT().Optimize(gomock.Any()).Return(processed("optimized"), nil)
		m.processor.EXPECT().Thumbnail(gomock.Any()).Return(processed("thumb"), nil)
		m.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).Return(nil).Times(2)
		m.store.EXPECT().GetURL(gomock.Any()).Return("https://cdn.example.com/new").Times(2)
		m.articleRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		m.store.EXPECT().Delete(ctx, "articles/2026/01/old.jpg").Return(nil)
		m.store.EXPECT().Delete(ctx, "articles/2026/01/old_thumb.jpg").Return(nil)

		_, err := svc.SetFeaturedImage(ctx, authorID, a.ID, bytes.NewReader([]byte("raw")), "photo.jpg", "")

		require.NoError(t, err)
	})

	t.Run("rejects other authors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUploadService(ctrl)

		ctx := context.Background()
		a := entity.NewArticle(uuid.New(), uuid.New(), "Story", "", "body", "")

		m.articleRepo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)

		_, err := svc.SetFeaturedImage(ctx, uuid.New(), a.ID, bytes.NewReader(nil), "photo.jpg", "")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestService_SetProfileImage(t *testing.T) {
	t.Run("stores optimized avatar under the author prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUploadService(ctrl)

		ctx := context.Background()
		author := entity.NewAuthor("reporter@example.com", "hash", "Sam")

		m.authorRepo.EXPECT().GetByID(ctx, author.ID).Return(author, nil)
		m.processor.EXPECT().Optimize(gomock.Any()).Return(processed("optimized"), nil)

		var key string
		m.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
			DoAndReturn(func(_ context.Context, k string, _ any, _ string, _ int64) error {
				key = k
				return nil
			})
		m.store.EXPECT().GetURL(gomock.Any()).Return("https://cdn.example.com/avatar")
		m.authorRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		updated, err := svc.SetProfileImage(ctx, author.ID, bytes.NewReader([]byte("raw")), "headshot.png")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "authors/"))
		assert.Equal(t, key, updated.ProfileImageKey)
	})

	t.Run("keeps previous avatar when optimization fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUploadService(ctrl)

		ctx := context.Background()
		author := entity.NewAuthor("reporter@example.com", "hash", "Sam")
		author.ProfileImageKey = "authors/2026/01/sam.jpg"

		m.authorRepo.EXPECT().GetByID(ctx, author.ID).Return(author, nil)
		m.processor.EXPECT().Optimize(gomock.Any()).Return(nil, errors.New("corrupt input"))

		updated, err := svc.SetProfileImage(ctx, author.ID, bytes.NewReader(nil), "broken.jpg")

		require.NoError(t, err)
		assert.Equal(t, "authors/2026/01/sam.jpg", updated.ProfileImageKey)
	})
}
