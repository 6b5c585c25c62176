package repository

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(db), mock, db
}

var userColumns = []string{"id", "email", "password_hash", "username", "created_at", "version"}

func TestUserRepository_Create(t *testing.T) {
	repo, mock, _ := newUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("a@b.com", "hashed", "alice", "2026-01-02T03:04:05Z").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("11111111-1111-1111-1111-111111111111", "a@b.com", "hashed", "alice", "2026-01-02T03:04:05Z", 0))

	user, err := repo.Create("a@b.com", "hashed", "alice", "2026-01-02T03:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, 0, user.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock, _ := newUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("a@b.com", "hashed", "alice", "2026-01-02T03:04:05Z").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create("a@b.com", "hashed", "alice", "2026-01-02T03:04:05Z")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mock, _ := newUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, username, created_at, version")).
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u1", "a@b.com", "hashed", "alice", "2026-01-02T03:04:05Z", 0))

	user, err := repo.FindByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo, mock, _ := newUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, username, created_at, version")).
		WithArgs("ghost@b.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail("ghost@b.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_DeleteWithTodos(t *testing.T) {
	repo, mock, _ := newUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todos WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteWithTodos("u1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteWithTodos_UserMissing(t *testing.T) {
	repo, mock, _ := newUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todos WHERE user_id = $1")).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteWithTodos("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
