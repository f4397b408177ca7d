package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInflow(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `inflows`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	date := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	inflow, err := s.CreateInflow(7, CreateInflowInput{
		Amount: 100,
		Date:   &date,
		Note:   "opening sales",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), inflow.UserID)
	assert.Equal(t, 100.0, inflow.Amount)
	assert.Equal(t, date, inflow.Date)
	// channel defaults to cash when omitted
	assert.Equal(t, "cash", inflow.PaymentChannel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInflow_DefaultsDateToNow(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `inflows`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	before := time.Now()
	inflow, err := s.CreateInflow(7, CreateInflowInput{Amount: 50, PaymentChannel: "transfer"})
	require.NoError(t, err)
	assert.False(t, inflow.Date.Before(before))
	assert.False(t, inflow.Date.After(time.Now()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInflow_Invalid(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	// rejected writes never reach the database
	_, err := s.CreateInflow(7, CreateInflowInput{Amount: 0})
	assert.True(t, IsValidation(err))

	_, err = s.CreateInflow(7, CreateInflowInput{Amount: -10})
	assert.True(t, IsValidation(err))

	_, err = s.CreateInflow(7, CreateInflowInput{Amount: 10, PaymentChannel: "barter"})
	assert.True(t, IsValidation(err))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInflowByID_NotFound(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	// absent, foreign-owned and soft-deleted rows all look the same
	mock.ExpectQuery("SELECT .* FROM `inflows`").
		WithArgs(99, 7, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.InflowByID(7, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateInflow_RevalidatesChangedFields(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `inflows`").
		WithArgs(3, 7, false).
		WillReturnRows(inflowRows().AddRow(3, 7, 100.0, now, "cash", "", false, now, now))

	bad := -5.0
	_, err := s.UpdateInflow(7, 3, UpdateInflowInput{Amount: &bad})
	assert.True(t, IsValidation(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateInflow(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `inflows`").
		WithArgs(3, 7, false).
		WillReturnRows(inflowRows().AddRow(3, 7, 100.0, now, "cash", "", false, now, now))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `inflows`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	amount := 250.0
	channel := "online"
	inflow, err := s.UpdateInflow(7, 3, UpdateInflowInput{Amount: &amount, PaymentChannel: &channel})
	require.NoError(t, err)
	assert.Equal(t, 250.0, inflow.Amount)
	assert.Equal(t, "online", inflow.PaymentChannel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteInflow(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `inflows`").
		WithArgs(3, 7, false).
		WillReturnRows(inflowRows().AddRow(3, 7, 100.0, now, "cash", "", false, now, now))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `inflows`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.SoftDeleteInflow(7, 3))

	// second delete: the default-filtered lookup no longer sees the row
	mock.ExpectQuery("SELECT .* FROM `inflows`").
		WithArgs(3, 7, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := s.SoftDeleteInflow(7, 3)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListInflows(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	start, end := DayWindow(day)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `inflows`").
		WithArgs(7, false, start, end, "transfer").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `inflows`").
		WithArgs(7, false, start, end, "transfer").
		WillReturnRows(inflowRows().AddRow(5, 7, 80.0, day, "transfer", "", false, now, now))

	inflows, pagination, err := s.ListInflows(7, InflowFilter{Day: &day, Channel: "transfer"}, 1, 50)
	require.NoError(t, err)
	require.Len(t, inflows, 1)
	assert.Equal(t, "transfer", inflows[0].PaymentChannel)
	assert.Equal(t, int64(1), pagination.Total)
	assert.Equal(t, 1, pagination.Pages)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListInflows_PageOverflow(t *testing.T) {
	s, mock, cleanup := newMockStore(t)
	defer cleanup()

	// only the count runs; the wrapped-negative offset never reaches MySQL
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `inflows`").
		WithArgs(7, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	inflows, pagination, err := s.ListInflows(7, InflowFilter{}, 1<<62, 20)
	require.NoError(t, err)
	assert.Empty(t, inflows)
	assert.Equal(t, int64(3), pagination.Total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func inflowRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "amount", "date", "payment_channel", "note", "is_deleted", "created_at", "updated_at",
	})
}
