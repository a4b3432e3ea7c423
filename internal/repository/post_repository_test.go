package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsin1016/post-blog-test/internal/models"
)

const (
	testPostID   = "7f7a1b6f-0000-0000-0000-00000000000a"
	testAuthorID = "4b3c0b6f-0000-0000-0000-000000000001"
)

func newPostRepo(t *testing.T) (PostRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostRepository(sqlx.NewDb(db, "sqlmock")), mock
}

var postTestColumns = []string{
	"post_id", "author_id", "author_name",
	"title", "summary", "content", "cover_url", "created_at", "updated_at",
}

func TestPostRepository_Create(t *testing.T) {
	repo, mock := newPostRepo(t)

	post := &models.Post{
		AuthorID: testAuthorID,
		Title:    "first",
		Summary:  "sum",
		Content:  "body",
	}

	mock.ExpectExec("INSERT INTO posts").
		WithArgs(sqlmock.AnyArg(), testAuthorID, "first", "sum", "body", nil,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), post)

	assert.NoError(t, err)
	assert.NotEmpty(t, post.PostID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID(t *testing.T) {
	repo, mock := newPostRepo(t)

	t.Run("found resolves author name", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM posts p JOIN users u").
			WithArgs(testPostID).
			WillReturnRows(sqlmock.NewRows(postTestColumns).
				AddRow(testPostID, testAuthorID, "alice", "first", "sum", "body", nil,
					time.Now(), time.Now()))

		post, err := repo.GetByID(context.Background(), testPostID)

		require.NoError(t, err)
		assert.Equal(t, "alice", post.AuthorName)
		assert.Nil(t, post.CoverURL)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM posts p JOIN users u").
			WithArgs(testPostID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), testPostID)

		assert.ErrorIs(t, err, models.ErrPostNotFound)
	})
}

func TestPostRepository_ListRecent(t *testing.T) {
	repo, mock := newPostRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM posts p JOIN users u").
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows(postTestColumns).
			AddRow("b0000000-0000-0000-0000-000000000002", testAuthorID, "alice", "B", "", "", nil, now, now).
			AddRow("a0000000-0000-0000-0000-000000000001", testAuthorID, "alice", "A", "", "", nil, now.Add(-time.Minute), now))

	posts, err := repo.ListRecent(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "B", posts[0].Title)
	assert.Equal(t, "A", posts[1].Title)
}

func TestPostRepository_Update(t *testing.T) {
	repo, mock := newPostRepo(t)

	cover := "http://blobs/1_cover.png"
	post := &models.Post{
		PostID:   testPostID,
		AuthorID: testAuthorID,
		Title:    "updated",
		Summary:  "sum",
		Content:  "body",
		CoverURL: &cover,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE posts SET").
			WithArgs("updated", "sum", "body", cover, sqlmock.AnyArg(), testPostID, testAuthorID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), post)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row", func(t *testing.T) {
		mock.ExpectExec("UPDATE posts SET").
			WithArgs("updated", "sum", "body", cover, sqlmock.AnyArg(), testPostID, testAuthorID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), post)

		assert.ErrorIs(t, err, models.ErrPostNotFound)
	})
}
