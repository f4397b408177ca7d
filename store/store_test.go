package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return New(gormDB), mock, func() { sqlDB.Close() }
}

func TestPaginationFor(t *testing.T) {
	p := paginationFor(101, 2, 50)
	require.Equal(t, int64(101), p.Total)
	require.Equal(t, 2, p.Page)
	require.Equal(t, 3, p.Pages)

	// empty result set has zero pages
	p = paginationFor(0, 1, 50)
	require.Equal(t, 0, p.Pages)
}
