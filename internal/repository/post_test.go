package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"newsroom/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_Create_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: "Test Post", Content: "Content", Author: "Admin", PublishedAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, post)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func seedPosts(t *testing.T, repo PostRepository) []*models.Post {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	posts := []*models.Post{
		{Title: "Budget vote passes", Category: "news", Content: "x", PublishedAt: base},
		{Title: "Election results", Category: "news", Content: "x", PublishedAt: base.Add(3 * time.Hour)},
		{Title: "Stadium opening", Category: "sports", Content: "x", PublishedAt: base.Add(time.Hour)},
		{Title: "Local election recap", Category: "sports", Content: "x", PublishedAt: base.Add(2 * time.Hour)},
		{Title: "Untagged note", Category: "", Content: "x", PublishedAt: base.Add(4 * time.Hour)},
	}
	for _, p := range posts {
		p.Author = models.DefaultPostAuthor
		require.NoError(t, repo.Create(ctx, p))
	}
	return posts
}

func TestPostRepository_List_NoFilter(t *testing.T) {
	t.Parallel()
	repo := NewPostRepository(setupTestDB(t))
	seedPosts(t, repo)

	posts, err := repo.List(context.Background(), PostFilter{})
	require.NoError(t, err)
	require.Len(t, posts, 5)
	// date descending
	assert.Equal(t, "Untagged note", posts[0].Title)
	assert.Equal(t, "Budget vote passes", posts[4].Title)
}

func TestPostRepository_List_CategoryFilter(t *testing.T) {
	t.Parallel()
	repo := NewPostRepository(setupTestDB(t))
	seedPosts(t, repo)

	posts, err := repo.List(context.Background(), PostFilter{Category: "news"})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Election results", posts[0].Title)
	assert.Equal(t, "Budget vote passes", posts[1].Title)
}

func TestPostRepository_List_SearchCaseInsensitive(t *testing.T) {
	t.Parallel()
	repo := NewPostRepository(setupTestDB(t))
	seedPosts(t, repo)

	posts, err := repo.List(context.Background(), PostFilter{Search: "ELECTION"})
	require.NoError(t, err)
	require.Len(t, posts, 2)
}

func TestPostRepository_List_FilterAndSemantics(t *testing.T) {
	t.Parallel()
	repo := NewPostRepository(setupTestDB(t))
	seedPosts(t, repo)
	ctx := context.Background()

	both, err := repo.List(ctx, PostFilter{Category: "news", Search: "election"})
	require.NoError(t, err)

	byCategory, err := repo.List(ctx, PostFilter{Category: "news"})
	require.NoError(t, err)
	bySearch, err := repo.List(ctx, PostFilter{Search: "election"})
	require.NoError(t, err)

	// combined result is exactly the intersection of the two single filters
	inCategory := map[uint]bool{}
	for _, p := range byCategory {
		inCategory[p.ID] = true
	}
	var intersection []uint
	for _, p := range bySearch {
		if inCategory[p.ID] {
			intersection = append(intersection, p.ID)
		}
	}
	require.Len(t, both, len(intersection))
	for i, p := range both {
		assert.Equal(t, intersection[i], p.ID)
	}
	require.Len(t, both, 1)
	assert.Equal(t, "Election results", both[0].Title)
}

func TestPostRepository_Related(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var anchor models.Post
	for i := 0; i < 5; i++ {
		p := models.Post{
			Title:       "culture piece",
			Category:    "culture",
			Content:     "x",
			Author:      models.DefaultPostAuthor,
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, &p))
		if i == 0 {
			anchor = p
		}
	}

	related, err := repo.Related(ctx, anchor.ID, "culture", 3)
	require.NoError(t, err)
	require.Len(t, related, 3)
	for _, p := range related {
		assert.NotEqual(t, anchor.ID, p.ID, "related lookup must exclude the post itself")
		assert.Equal(t, "culture", p.Category)
	}

	// deterministic ordering: newest first
	assert.True(t, related[0].PublishedAt.After(related[1].PublishedAt))
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo := NewPostRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 404)
	assertNotFound(t, err)
}

func TestPostRepository_Delete(t *testing.T) {
	t.Parallel()
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	post := &models.Post{Title: "gone soon", Content: "x", Author: "Admin", PublishedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, post))

	existed, err := repo.Delete(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = repo.GetByID(ctx, post.ID)
	assertNotFound(t, err)

	existed, err = repo.Delete(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestPostRepository_DeleteDoesNotCascadeComments(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: "with comments", Content: "x", Author: "Admin", PublishedAt: time.Now()}
	require.NoError(t, postRepo.Create(ctx, post))

	comment := &models.Comment{PostID: post.ID, Text: "orphan me", Status: models.CommentStatusApproved}
	require.NoError(t, commentRepo.Create(ctx, comment))

	existed, err := postRepo.Delete(ctx, post.ID)
	require.NoError(t, err)
	require.True(t, existed)

	// the comment survives, still referencing the deleted post
	got, err := commentRepo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.PostID)
}
