package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	helper "artspace_backend/internals/helpers"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestFindByNamePagesAndEnriches(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewArtistService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "artists" WHERE name ILIKE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "artists" WHERE name ILIKE .* ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "country"}).
			AddRow(4, "Edward Hopper", "USA"))
	// Enrichment: the artwork id projection for the one returned row.
	mock.ExpectQuery(`SELECT "id" FROM "artworks" WHERE artist_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))

	list, meta, err := s.FindByName(context.Background(), "hopper", helper.Params{
		Page: 1, PerPage: 10, SortBy: "name", SortOrder: "asc",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Edward Hopper", *list[0].Name)
	assert.Equal(t, []uint{10, 11}, list[0].ArtworkIDs)
	assert.Equal(t, int64(1), meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}
