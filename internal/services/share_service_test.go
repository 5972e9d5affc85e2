package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectUserByUsername(mock sqlmock.Sqlmock, id uuid.UUID, username, nickname string) {
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "nickname"}).
			AddRow(id.String(), username, nickname))
}

func TestDeleteSharePostNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewShareService(db)

	expectUserByUsername(mock, uuid.New(), "alice", "Alice")
	mock.ExpectQuery(`SELECT \* FROM "share_posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	err := svc.DeleteSharePost(5, "alice")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeleteSharePostForeignPost(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewShareService(db)
	owner := uuid.New()

	expectUserByUsername(mock, uuid.New(), "alice", "Alice")
	mock.ExpectQuery(`SELECT \* FROM "share_posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(5, owner.String()))

	err := svc.DeleteSharePost(5, "alice")
	assert.ErrorIs(t, err, ErrNotPostOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSharePostRemovesLikesFirst(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewShareService(db)
	owner := uuid.New()

	expectUserByUsername(mock, owner, "alice", "Alice")
	mock.ExpectQuery(`SELECT \* FROM "share_posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(5, owner.String()))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "share_posts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.DeleteSharePost(5, "alice")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeAddsLike(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewShareService(db)
	viewer := uuid.New()
	author := uuid.New()

	expectUserByUsername(mock, viewer, "alice", "Alice")
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "share_posts" .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "like_count"}).
			AddRow(5, author.String(), "Starfall", 2))
	mock.ExpectQuery(`SELECT \* FROM "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectExec(`UPDATE "share_posts" SET "like_count"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nickname"}).
			AddRow(author.String(), "Nox"))

	post, err := svc.ToggleLike(5, "alice")
	require.NoError(t, err)

	assert.True(t, post.LikedByMe)
	assert.Equal(t, 3, post.LikeCount)
	assert.Equal(t, "Nox", post.AuthorNickname)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeRemovesExistingLike(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewShareService(db)
	viewer := uuid.New()
	author := uuid.New()

	expectUserByUsername(mock, viewer, "alice", "Alice")
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "share_posts" .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "like_count"}).
			AddRow(5, author.String(), "Starfall", 2))
	mock.ExpectQuery(`SELECT \* FROM "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "post_id"}).
			AddRow(9, viewer.String(), 5))
	mock.ExpectExec(`DELETE FROM "likes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "share_posts" SET "like_count"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nickname"}).
			AddRow(author.String(), "Nox"))

	post, err := svc.ToggleLike(5, "alice")
	require.NoError(t, err)

	assert.False(t, post.LikedByMe)
	assert.Equal(t, 1, post.LikeCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeMissingPost(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewShareService(db)

	expectUserByUsername(mock, uuid.New(), "alice", "Alice")
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "share_posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.ToggleLike(404, "alice")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetAllSharePostsEmptyFeed(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewShareService(db)

	mock.ExpectQuery(`SELECT \* FROM "share_posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	posts, err := svc.GetAllSharePosts("")
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
