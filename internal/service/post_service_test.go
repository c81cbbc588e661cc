package service

import (
	"context"
	"testing"

	"newsroom/internal/models"
	"newsroom/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, uint) (*models.Post, error)
	listFn    func(context.Context, repository.PostFilter) ([]*models.Post, error)
	relatedFn func(context.Context, uint, string, int) ([]*models.Post, error)
	updateFn  func(context.Context, *models.Post) error
	deleteFn  func(context.Context, uint) (bool, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, filter repository.PostFilter) ([]*models.Post, error) {
	return s.listFn(ctx, filter)
}
func (s *postRepoStub) Related(ctx context.Context, postID uint, category string, limit int) ([]*models.Post, error) {
	return s.relatedFn(ctx, postID, category, limit)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) (bool, error) {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listFn: func(_ context.Context, _ repository.PostFilter) ([]*models.Post, error) {
			return nil, nil
		},
		relatedFn: func(_ context.Context, _ uint, _ string, _ int) ([]*models.Post, error) {
			return nil, nil
		},
		updateFn: func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn: func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo())
	ctx := context.Background()

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{Content: "body"})
		assertValidationError(t, err)
	})

	t.Run("whitespace title", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{Title: "   ", Content: "body"})
		assertValidationError(t, err)
	})

	t.Run("missing content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{Title: "headline"})
		assertValidationError(t, err)
	})
}

func TestPostService_CreatePost_Defaults(t *testing.T) {
	t.Parallel()

	repo := noopPostRepo()
	var stored *models.Post
	repo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 7
		stored = p
		return nil
	}

	svc := NewPostService(repo)
	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:   "headline",
		Content: "body",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), post.ID)
	assert.Equal(t, models.DefaultPostAuthor, stored.Author)
	assert.False(t, stored.PublishedAt.IsZero())
}

func TestPostService_CreatePost_ExplicitAuthorKept(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo())
	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:   "headline",
		Content: "body",
		Author:  "Vince",
	})
	require.NoError(t, err)
	assert.Equal(t, "Vince", post.Author)
}

func TestPostService_UpdatePost_PartialMerge(t *testing.T) {
	t.Parallel()

	existing := &models.Post{
		ID:       1,
		Title:    "old title",
		Category: "news",
		Content:  "old body",
		Author:   "Vince",
	}
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) { return existing, nil }

	svc := NewPostService(repo)

	newTitle := "new title"
	post, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		PostID: 1,
		Title:  &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", post.Title)
	// absent fields untouched
	assert.Equal(t, "news", post.Category)
	assert.Equal(t, "old body", post.Content)
	assert.Equal(t, "Vince", post.Author)
}

func TestPostService_UpdatePost_AuthorFallback(t *testing.T) {
	t.Parallel()

	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return &models.Post{ID: 1, Title: "t", Content: "c", Author: "Vince"}, nil
	}
	svc := NewPostService(repo)

	t.Run("whitespace author keeps prior byline", func(t *testing.T) {
		t.Parallel()
		blank := "   "
		post, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: 1, Author: &blank})
		require.NoError(t, err)
		assert.Equal(t, "Vince", post.Author)
	})

	t.Run("non-empty author replaces", func(t *testing.T) {
		t.Parallel()
		name := "Editor"
		post, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: 1, Author: &name})
		require.NoError(t, err)
		assert.Equal(t, "Editor", post.Author)
	})
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	t.Parallel()

	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}
	svc := NewPostService(repo)

	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: 99})
	assertNotFoundError(t, err)
}

func TestPostService_RelatedPosts(t *testing.T) {
	t.Parallel()

	t.Run("uses the post's category with limit 3", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, Category: "news"}, nil
		}
		var gotCategory string
		var gotLimit int
		repo.relatedFn = func(_ context.Context, _ uint, category string, limit int) ([]*models.Post, error) {
			gotCategory = category
			gotLimit = limit
			return []*models.Post{{ID: 2}}, nil
		}
		svc := NewPostService(repo)
		posts, err := svc.RelatedPosts(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, "news", gotCategory)
		assert.Equal(t, 3, gotLimit)
	})

	t.Run("uncategorized post has no related content", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1}, nil
		}
		svc := NewPostService(repo)
		posts, err := svc.RelatedPosts(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}
