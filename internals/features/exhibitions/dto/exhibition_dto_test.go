package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artspace_backend/internals/crud"
	artworkModel "artspace_backend/internals/features/artworks/model"
	model "artspace_backend/internals/features/exhibitions/model"
	helper "artspace_backend/internals/helpers"
	"artspace_backend/internals/helpers/errs"
)

func TestToEntityRequiresWindow(t *testing.T) {
	_, err := ExhibitionMapper{}.ToEntity(&ExhibitionDTO{Title: crud.Ptr("Modernism")})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = ExhibitionMapper{}.ToEntity(&ExhibitionDTO{
		Title:     crud.Ptr("Modernism"),
		StartDate: crud.Ptr("2026-09-01"),
	})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestToEntityParsesDates(t *testing.T) {
	e, err := ExhibitionMapper{}.ToEntity(&ExhibitionDTO{
		Title:     crud.Ptr("Modernism"),
		StartDate: crud.Ptr("2026-09-01"),
		EndDate:   crud.Ptr("2026-12-24"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", helper.FormatDate(e.StartDate))
	assert.Equal(t, "2026-12-24", helper.FormatDate(e.EndDate))
}

func TestToDTOProjectsArtworkIDs(t *testing.T) {
	a1 := artworkModel.ArtworkModel{Title: "one"}
	a1.ID = 11
	a2 := artworkModel.ArtworkModel{Title: "two"}
	a2.ID = 12

	e := &model.ExhibitionModel{Title: "Modernism", Artworks: []artworkModel.ArtworkModel{a1, a2}}
	e.ID = 1

	d := ExhibitionMapper{}.ToDTO(e)
	assert.Equal(t, []uint{11, 12}, d.ArtworkIDs)
}
