package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adarkz/YellowCarGame-chef/internal/models"
	"github.com/adarkz/YellowCarGame-chef/internal/storage"
	"github.com/adarkz/YellowCarGame-chef/internal/storage/sqldb"
)

var scoreRowColumns = []string{"id", "user_id", "total_points", "total_spots", "updated_at"}

func newMockStore(t *testing.T) (*sqldb.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))
	store, err := NewWithDB(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		mock.ExpectClose()
		assert.NoError(t, store.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return store, mock
}

func TestNewWithDBMigrationError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

	_, err = NewWithDB(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run migrations")
}

func TestGetScoreByUserUsesDollarPlaceholders(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_scores WHERE user_id = $1")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(scoreRowColumns).AddRow("score-1", "user-1", 4, 4, 1700000000))

	score, err := store.GetScoreByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), score.TotalPoints)
	assert.Equal(t, int64(4), score.TotalSpots)
}

func TestGetScoreByUserNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_scores WHERE user_id = $1")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(scoreRowColumns))

	_, err := store.GetScoreByUser(context.Background(), "nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListTopScores(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY total_points DESC, user_id ASC LIMIT $1")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(scoreRowColumns).
			AddRow("s1", "u-b", 9, 9, 1).
			AddRow("s2", "u-a", 5, 5, 1))

	scores, err := store.ListTopScores(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, "u-b", scores[0].UserID)
	assert.Equal(t, "u-a", scores[1].UserID)
}

func TestCreateFriendshipUniqueViolation(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO friendships").
		WithArgs(sqlmock.AnyArg(), "a", "b", "accepted", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := store.CreateFriendship(context.Background(), &models.Friendship{
		UserID:   "a",
		FriendID: "b",
		Status:   models.FriendshipAccepted,
	})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestCreateCarSpotOtherErrorsAreNotDuplicates(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO car_spots").
		WillReturnError(&pq.Error{Code: "57014", Message: "canceling statement due to statement timeout"})

	err := store.CreateCarSpot(context.Background(), &models.CarSpot{UserID: "a", ImageID: "img", Points: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestInTxCommits(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_scores")).
		WithArgs(3, 3, sqlmock.AnyArg(), "score-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.InTx(ctx, func(tx storage.Tx) error {
		return tx.UpdateScore(ctx, &models.UserScore{ID: "score-1", UserID: "u", TotalPoints: 3, TotalSpots: 3})
	})
	require.NoError(t, err)
}

func TestInTxRollsBackOnError(t *testing.T) {
	store, mock := newMockStore(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestInTxSerializationFailurePropagates(t *testing.T) {
	store, mock := newMockStore(t)
	serialization := &pq.Error{Code: "40001", Message: "could not serialize access"}

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(serialization)

	err := store.InTx(context.Background(), func(tx storage.Tx) error { return nil })
	assert.ErrorIs(t, err, storage.ErrConflict)
	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestInTxMarksConflictFromStatement(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()
	deadlock := &pq.Error{Code: "40P01", Message: "deadlock detected"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_scores WHERE user_id = $1")).
		WithArgs("user-1").
		WillReturnError(deadlock)
	mock.ExpectRollback()

	err := store.InTx(ctx, func(tx storage.Tx) error {
		_, err := tx.GetScoreByUser(ctx, "user-1")
		return err
	})
	assert.ErrorIs(t, err, storage.ErrConflict)
	assert.ErrorIs(t, err, deadlock)
}

func TestInTxPlainErrorsAreNotConflicts(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "08006", Message: "connection failure"})

	err := store.InTx(context.Background(), func(tx storage.Tx) error { return nil })
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrConflict)
}

func TestIsConflict(t *testing.T) {
	assert.True(t, isConflict(&pq.Error{Code: "40001"}))
	assert.True(t, isConflict(&pq.Error{Code: "40P01"}))
	assert.False(t, isConflict(&pq.Error{Code: "23505"}))
	assert.False(t, isConflict(errors.New("plain")))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("plain")))
}
