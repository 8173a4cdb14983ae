package crud

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"artspace_backend/internals/helpers/errs"
)

type widget struct {
	BaseModel
	Name string `gorm:"column:name" json:"name"`
}

func (widget) TableName() string { return "widgets" }

type widgetDTO struct {
	BaseDTO
	Name *string `json:"name,omitempty"`
}

type widgetMapper struct{}

func (widgetMapper) ToDTO(e *widget) *widgetDTO {
	d := &widgetDTO{}
	FillBase(&d.BaseDTO, &e.BaseModel)
	d.Name = Ptr(e.Name)
	return d
}

func (widgetMapper) ToEntity(d *widgetDTO) (*widget, error) {
	if d.Name == nil || *d.Name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrInvalidArgument)
	}
	return &widget{Name: *d.Name}, nil
}

func (widgetMapper) ApplyUpdate(e *widget, d *widgetDTO) error {
	if d.Name != nil {
		if *d.Name == "" {
			return fmt.Errorf("%w: name cannot be blank", errs.ErrInvalidArgument)
		}
		e.Name = *d.Name
	}
	return nil
}

type failingResolver struct{ err error }

func (r failingResolver) ResolveRelations(_ *gorm.DB, _ *widget, _ *widgetDTO) error {
	return r.err
}

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

func newWidgetService(db *gorm.DB) *Service[widget, widgetDTO] {
	return &Service[widget, widgetDTO]{
		DB:          db,
		Mapper:      widgetMapper{},
		SortKeys:    map[string]string{"id": "id", "name": "name"},
		DefaultSort: "id",
		Name:        "widget",
	}
}

func TestGetOneNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := newWidgetService(db)

	mock.ExpectQuery(`SELECT \* FROM "widgets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := s.GetOne(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Contains(t, err.Error(), "widget with id 42")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRequiresID(t *testing.T) {
	db, _ := newMockDB(t)
	s := newWidgetService(db)

	_, err := s.Update(context.Background(), &widgetDTO{Name: Ptr("x")})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestUpdateAbortsWhenMergeFails(t *testing.T) {
	db, mock := newMockDB(t)
	s := newWidgetService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "widgets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "old"))
	mock.ExpectRollback()

	d := &widgetDTO{Name: Ptr("")}
	d.SetID(3)
	_, err := s.Update(context.Background(), d)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := newWidgetService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "widgets"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenRelationMissing(t *testing.T) {
	db, mock := newMockDB(t)
	s := newWidgetService(db)
	s.Resolver = failingResolver{err: fmt.Errorf("%w: owner with id 9", errs.ErrNotFound)}

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := s.Create(context.Background(), &widgetDTO{Name: Ptr("x")})
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsMissingRequiredField(t *testing.T) {
	db, _ := newMockDB(t)
	s := newWidgetService(db)

	_, err := s.Create(context.Background(), &widgetDTO{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestTranslateDuplicateKey(t *testing.T) {
	db, _ := newMockDB(t)
	s := newWidgetService(db)

	err := s.translate(fmt.Errorf(`ERROR: duplicate key value violates unique constraint "widgets_name_key"`))
	assert.ErrorIs(t, err, errs.ErrConflict)

	err = s.translate(gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, err, errs.ErrConflict)

	passthrough := fmt.Errorf("%w: widget with id 1", errs.ErrNotFound)
	assert.Equal(t, passthrough, s.translate(passthrough))
}
