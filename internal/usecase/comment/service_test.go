package comment_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
	"github.com/newsdeskhq/newsdesk-backend/internal/domain/entity"
	"github.com/newsdeskhq/newsdesk-backend/internal/mocks"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/comment"
)

func newCommentService(ctrl *gomock.Controller) (*comment.Service, *mocks.MockCommentRepository, *mocks.MockArticleRepository) {
	commentRepo := mocks.NewMockCommentRepository(ctrl)
	articleRepo := mocks.NewMockArticleRepository(ctrl)
	return comment.NewService(commentRepo, articleRepo), commentRepo, articleRepo
}

func published() *entity.Article {
	a := entity.NewArticle(uuid.New(), uuid.New(), "Story", "", "body", "")
	a.Publish()
	return a
}

func TestService_Create(t *testing.T) {
	t.Run("holds new comments for moderation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, commentRepo, articleRepo := newCommentService(ctrl)

		ctx := context.Background()
		a := published()

		articleRepo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		commentRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		cm, err := svc.Create(ctx, comment.CreateInput{
			ArticleID: a.ID,
			Name:      "Alice",
			Email:     "alice@example.com",
			Content:   "Great piece",
		})

		require.NoError(t, err)
		assert.False(t, cm.IsApproved)
		assert.Nil(t, cm.ParentID)
	})

	t.Run("rejects comments on drafts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, articleRepo := newCommentService(ctrl)

		ctx := context.Background()
		draft := entity.NewArticle(uuid.New(), uuid.New(), "Draft", "", "wip", "")

		articleRepo.EXPECT().GetByID(ctx, draft.ID).Return(draft, nil)

		_, err := svc.Create(ctx, comment.CreateInput{
			ArticleID: draft.ID,
			Name:      "Alice",
			Email:     "alice@example.com",
			Content:   "Early thoughts",
		})

		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})

	t.Run("attaches replies to the comment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, commentRepo, articleRepo := newCommentService(ctrl)

		ctx := context.Background()
		a := published()
		parent := entity.NewComment(a.ID, nil, "Alice", "alice@example.com", "", "Great piece")

		articleRepo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		commentRepo.EXPECT().GetByID(ctx, parent.ID).Return(parent, nil)
		commentRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		cm, err := svc.Create(ctx, comment.CreateInput{
			ArticleID: a.ID,
			ParentID:  &parent.ID,
			Name:      "Bob",
			Email:     "bob@example.com",
			Content:   "Agreed",
		})

		require.NoError(t, err)
		require.NotNil(t, cm.ParentID)
		assert.Equal(t, parent.ID, *cm.ParentID)
	})

	t.Run("flattens replies to replies onto the top-level parent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, commentRepo, articleRepo := newCommentService(ctrl)

		ctx := context.Background()
		a := published()
		top := entity.NewComment(a.ID, nil, "Alice", "alice@example.com", "", "Great piece")
		reply := entity.NewComment(a.ID, &top.ID, "Bob", "bob@example.com", "", "Agreed")

		articleRepo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		commentRepo.EXPECT().GetByID(ctx, reply.ID).Return(reply, nil)
		commentRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		cm, err := svc.Create(ctx, comment.CreateInput{
			ArticleID: a.ID,
			ParentID:  &reply.ID,
			Name:      "Carol",
			Email:     "carol@example.com",
			Content:   "Same here",
		})

		require.NoError(t, err)
		require.NotNil(t, cm.ParentID)
		assert.Equal(t, top.ID, *cm.ParentID)
	})

	t.Run("rejects parents from another article", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, commentRepo, articleRepo := newCommentService(ctrl)

		ctx := context.Background()
		a := published()
		other := entity.NewComment(uuid.New(), nil, "Alice", "alice@example.com", "", "Off topic")

		articleRepo.EXPECT().GetByID(ctx, a.ID).Return(a, nil)
		commentRepo.EXPECT().GetByID(ctx, other.ID).Return(other, nil)

		_, err := svc.Create(ctx, comment.CreateInput{
			ArticleID: a.ID,
			ParentID:  &other.ID,
			Name:      "Bob",
			Email:     "bob@example.com",
			Content:   "Reply",
		})

		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})
}

func TestService_Approve(t *testing.T) {
	t.Run("delegates to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, commentRepo, _ := newCommentService(ctrl)

		ctx := context.Background()
		id := uuid.New()
		commentRepo.EXPECT().Approve(ctx, id).Return(nil)

		require.NoError(t, svc.Approve(ctx, id))
	})
}
