package upload

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository"
	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/storage"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/uploadpath"
)

type Service struct {
	articleRepo repository.ArticleRepository
	authorRepo  repository.AuthorRepository
	processor   storage.ImageProcessor
	storage     storage.ImageStorage
	logger      *zap.Logger
}

func NewService(
	articleRepo repository.ArticleRepository,
	authorRepo repository.AuthorRepository,
	processor storage.ImageProcessor,
	store storage.ImageStorage,
	logger *zap.Logger,
) *Service {
	return &Service{
		articleRepo: articleRepo,
		authorRepo:  authorRepo,
		processor:   processor,
		storage:     store,
		logger:      logger,
	}
}

// SetFeaturedImage optimizes the upload, stores it, derives a thumbnail and
// attaches both to the article. Processing failures never fail the request:
// the error is logged and the article keeps its previous images.
func (s *Service) SetFeaturedImage(ctx context.Context, authorID, articleID uuid.UUID, file io.Reader, filename, altText string) (*entity.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != authorID {
		return nil, domain.ErrForbidden
	}

	optimized, err := s.processor.Optimize(file)
	if err != nil {
		s.logger.Warn("featured image optimization failed, keeping previous image",
			zap.String("article_id", articleID.String()),
			zap.String("filename", filename),
			zap.Error(err),
		)
		return article, nil
	}

	key := uploadpath.Build("article", filename, time.Now())
	if err := s.storage.Upload(ctx, key, optimized.Reader(), optimized.ContentType, optimized.Size); err != nil {
		return nil, fmt.Errorf("uploading featured image: %w", err)
	}

	oldImageKey := article.FeaturedImageKey
	oldThumbKey := article.ThumbnailKey
	article.SetFeaturedImage(s.storage.GetURL(key), key, altText)

	// The thumbnail is derived from the already optimized image. If it
	// cannot be produced the article ships with the full-size image only.
	thumb, err := s.processor.Thumbnail(optimized.Reader())
	if err != nil {
		s.logger.Warn("thumbnail generation failed, keeping article without thumbnail",
			zap.String("article_id", articleID.String()),
			zap.Error(err),
		)
		article.SetThumbnail("", "")
	} else {
		thumbKey := thumbnailKey(key)
		if err := s.storage.Upload(ctx, thumbKey, thumb.Reader(), thumb.ContentType, thumb.Size); err != nil {
			return nil, fmt.Errorf("uploading thumbnail: %w", err)
		}
		article.SetThumbnail(s.storage.GetURL(thumbKey), thumbKey)
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("saving article images: %w", err)
	}

	s.deleteOld(ctx, oldImageKey, key)
	s.deleteOld(ctx, oldThumbKey, article.ThumbnailKey)

	return article, nil
}

// SetProfileImage replaces the author's avatar with an optimized copy.
func (s *Service) SetProfileImage(ctx context.Context, authorID uuid.UUID, file io.Reader, filename string) (*entity.Author, error) {
	author, err := s.authorRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	optimized, err := s.processor.Optimize(file)
	if err != nil {
		s.logger.Warn("profile image optimization failed, keeping previous image",
			zap.String("author_id", authorID.String()),
			zap.String("filename", filename),
			zap.Error(err),
		)
		return author, nil
	}

	key := uploadpath.Build("author", filename, time.Now())
	if err := s.storage.Upload(ctx, key, optimized.Reader(), optimized.ContentType, optimized.Size); err != nil {
		return nil, fmt.Errorf("uploading profile image: %w", err)
	}

	oldKey := author.ProfileImageKey
	author.ProfileImageURL = s.storage.GetURL(key)
	author.ProfileImageKey = key

	if err := s.authorRepo.Update(ctx, author); err != nil {
		return nil, fmt.Errorf("saving author profile image: %w", err)
	}

	s.deleteOld(ctx, oldKey, key)

	return author, nil
}

func (s *Service) deleteOld(ctx context.Context, oldKey, newKey string) {
	if oldKey == "" || oldKey == newKey {
		return
	}
	if err := s.storage.Delete(ctx, oldKey); err != nil {
		s.logger.Warn("deleting replaced image failed",
			zap.String("key", oldKey),
			zap.Error(err),
		)
	}
}

func thumbnailKey(key string) string {
	ext := path.Ext(key)
	return strings.TrimSuffix(key, ext) + "_thumb" + ext
}
