package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestMustDoDeleteCascadesComments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMustDoRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "must_do_comments" SET "deleted_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "must_dos" SET "deleted_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), id)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMustDoDeleteRollsBackWhenItemMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMustDoRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "must_do_comments" SET "deleted_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "must_dos" SET "deleted_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), id)

	// The comment delete is rolled back with the failed item delete, so no
	// comments go missing for an id that was never there.
	assert.ErrorIs(t, err, utils.ErrMustDoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMustDoPromoteCommitsActivityAndFlagTogether(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMustDoRepository(db)
	itemID := uuid.New()
	dayID := uuid.New()
	activityID := uuid.New()

	stored := dbm.Activity{DayID: dayID, Name: "Northern lights", Type: "nature"}
	stored.ID = activityID

	activityRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "day_id", "name", "type"}).
			AddRow(activityID, dayID, stored.Name, stored.Type)
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "activities" WHERE day_id`)).
		WillReturnRows(activityRows())
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "activities" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "activities" WHERE day_id`)).
		WillReturnRows(activityRows())
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "must_dos" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	flagged := true
	rows, err := repo.Promote(context.Background(), itemID,
		dbm.MustDo{AddedToItinerary: &flagged},
		DayReplacement{DayID: dayID, Desired: []dbm.Activity{stored}})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, activityID, rows[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMustDoPromoteRollsBackActivityWriteWhenItemMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMustDoRepository(db)
	itemID := uuid.New()
	dayID := uuid.New()
	activityID := uuid.New()

	stored := dbm.Activity{DayID: dayID, Name: "Northern lights", Type: "nature"}
	stored.ID = activityID

	activityRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "day_id", "name", "type"}).
			AddRow(activityID, dayID, stored.Name, stored.Type)
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "activities" WHERE day_id`)).
		WillReturnRows(activityRows())
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "activities" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "activities" WHERE day_id`)).
		WillReturnRows(activityRows())
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "must_dos" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	flagged := true
	_, err := repo.Promote(context.Background(), itemID,
		dbm.MustDo{AddedToItinerary: &flagged},
		DayReplacement{DayID: dayID, Desired: []dbm.Activity{stored}})

	// The activity write never commits without the flag, so a retry cannot
	// duplicate the promoted row.
	assert.ErrorIs(t, err, utils.ErrMustDoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
