package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artspace_backend/internals/crud"
	artistModel "artspace_backend/internals/features/artists/model"
	model "artspace_backend/internals/features/artworks/model"
	helper "artspace_backend/internals/helpers"
	"artspace_backend/internals/helpers/errs"
)

func TestToEntityRequiresTitle(t *testing.T) {
	_, err := ArtworkMapper{}.ToEntity(&ArtworkDTO{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestToEntityRejectsUnknownCategory(t *testing.T) {
	_, err := ArtworkMapper{}.ToEntity(&ArtworkDTO{
		Title:    crud.Ptr("Nighthawks"),
		Category: crud.Ptr("FRESCO"),
	})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestApplyUpdateMergesOnlyPresentFields(t *testing.T) {
	cd, err := helper.ParseDate("1942-01-01")
	require.NoError(t, err)

	e := &model.ArtworkModel{
		Title:        "Nighthawks",
		Description:  "Oil on canvas",
		Price:        crud.Ptr(1200.0),
		CreationDate: &cd,
		Medium:       "oil",
		Category:     model.CategoryPainting,
	}

	require.NoError(t, ArtworkMapper{}.ApplyUpdate(e, &ArtworkDTO{
		Title: crud.Ptr("Nighthawks (restored)"),
		Price: crud.Ptr(1500.0),
	}))

	assert.Equal(t, "Nighthawks (restored)", e.Title)
	assert.Equal(t, 1500.0, *e.Price)
	// Absent fields keep their stored values.
	assert.Equal(t, "Oil on canvas", e.Description)
	assert.Equal(t, "oil", e.Medium)
	assert.Equal(t, model.CategoryPainting, e.Category)
	assert.Equal(t, &cd, e.CreationDate)
}

func TestApplyUpdateSurfacesBadDate(t *testing.T) {
	e := &model.ArtworkModel{Title: "Nighthawks"}
	err := ArtworkMapper{}.ApplyUpdate(e, &ArtworkDTO{CreationDate: crud.Ptr("next tuesday")})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestToDTOFlattensArtist(t *testing.T) {
	artist := &artistModel.ArtistModel{Name: "Edward Hopper"}
	artist.ID = 4

	e := &model.ArtworkModel{
		Title:    "Nighthawks",
		Category: model.CategoryPainting,
		ArtistID: crud.Ptr(uint(4)),
		Artist:   artist,
	}
	e.ID = 10

	d := ArtworkMapper{}.ToDTO(e)
	require.NotNil(t, d.ArtistName)
	assert.Equal(t, "Edward Hopper", *d.ArtistName)
	assert.Equal(t, uint(4), *d.ArtistID)
	assert.Equal(t, "PAINTING", *d.Category)
	assert.Equal(t, uint(10), *d.ID)
}
