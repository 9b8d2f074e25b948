package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipekeep/internal/logger"
	"recipekeep/models"
)

func newTestPendingRepo(t *testing.T, mockDB *DB) PendingUploadRepository {
	t.Helper()
	return NewPendingUploadRepository(mockDB, logger.Nop())
}

var pendingUploadColumns = []string{
	"temp_id", "recipe_id", "timestamp", "filename", "status", "photo_path", "error",
}

func TestPendingUploadRepository_Save(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPendingRepo(t, newDBFromSQL(db))

	upload := models.PendingUpload{
		TempID:    "temp-abc",
		RecipeID:  1,
		Timestamp: 1700000000000,
		Filename:  "dish.jpg",
		Status:    models.UploadStatusUploading,
	}

	mock.ExpectExec(regexp.QuoteMeta(savePendingUpload)).
		WithArgs("temp-abc", int64(1), int64(1700000000000), "dish.jpg", models.UploadStatusUploading, "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(testContext(), upload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingUploadRepository_Save_UpsertsStatusTransition(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPendingRepo(t, newDBFromSQL(db))

	upload := models.PendingUpload{
		TempID:    "temp-abc",
		RecipeID:  1,
		Timestamp: 1700000000000,
		Filename:  "dish.jpg",
		Status:    models.UploadStatusError,
		Error:     "connection reset",
	}

	// same temp_id, new status: the upsert carries the transition
	mock.ExpectExec(regexp.QuoteMeta(savePendingUpload)).
		WithArgs("temp-abc", int64(1), int64(1700000000000), "dish.jpg", models.UploadStatusError, "", "connection reset").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(testContext(), upload))
}

func TestPendingUploadRepository_Save_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPendingRepo(t, newDBFromSQL(db))

	mock.ExpectExec(regexp.QuoteMeta(savePendingUpload)).
		WillReturnError(errors.New("database is locked"))

	err := repo.Save(testContext(), models.PendingUpload{TempID: "temp-abc"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestPendingUploadRepository_GetByRecipe(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPendingRepo(t, newDBFromSQL(db))

	mock.ExpectQuery(regexp.QuoteMeta(getPendingUploadsByRecipe)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(pendingUploadColumns).
			AddRow("temp-old", int64(1), int64(1690000000000), "a.jpg", models.UploadStatusCompleted, "recipe-photos/1/a.jpg", "").
			AddRow("temp-new", int64(1), int64(1700000000000), "b.jpg", models.UploadStatusError, "", "connection reset"))

	uploads, err := repo.GetByRecipe(testContext(), 1)
	require.NoError(t, err)

	require.Len(t, uploads, 2)
	assert.Equal(t, "temp-old", uploads[0].TempID)
	assert.Equal(t, "recipe-photos/1/a.jpg", uploads[0].PhotoPath)
	assert.Equal(t, models.UploadStatusError, uploads[1].Status)
	assert.Equal(t, "connection reset", uploads[1].Error)
}

func TestPendingUploadRepository_GetByRecipe_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPendingRepo(t, newDBFromSQL(db))

	mock.ExpectQuery(regexp.QuoteMeta(getPendingUploadsByRecipe)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(pendingUploadColumns))

	uploads, err := repo.GetByRecipe(testContext(), 9)
	require.NoError(t, err)
	assert.Empty(t, uploads)
	assert.NotNil(t, uploads)
}

func TestPendingUploadRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPendingRepo(t, newDBFromSQL(db))

	mock.ExpectExec(regexp.QuoteMeta(deletePendingUpload)).
		WithArgs("temp-abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(testContext(), "temp-abc"))
}

func TestPendingUploadRepository_Delete_AbsentRowIsFine(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestPendingRepo(t, newDBFromSQL(db))

	mock.ExpectExec(regexp.QuoteMeta(deletePendingUpload)).
		WithArgs("temp-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(testContext(), "temp-gone"))
}
