package dto

import (
	"fmt"
	"strings"

	"artspace_backend/internals/crud"
	model "artspace_backend/internals/features/artists/model"
	helper "artspace_backend/internals/helpers"
	"artspace_backend/internals/helpers/errs"
)

type ArtistDTO struct {
	crud.BaseDTO
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Biography   *string `json:"biography,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Country     *string `json:"country,omitempty" validate:"omitempty,max=100"`
	ContactInfo *string `json:"contact_info,omitempty" validate:"omitempty,max=255"`
	PhotoPath   *string `json:"photo_path,omitempty"`

	// Read-only projection of the artist's artworks.
	ArtworkIDs []uint `json:"artwork_ids,omitempty"`
}

// ArtistSearchDTO is the body of POST /artists/search. Absent fields do not
// filter; present fields are ANDed.
type ArtistSearchDTO struct {
	Name    *string `json:"name,omitempty"`
	Country *string `json:"country,omitempty"`
}

type ArtistMapper struct{}

func (ArtistMapper) ToDTO(e *model.ArtistModel) *ArtistDTO {
	d := &ArtistDTO{}
	crud.FillBase(&d.BaseDTO, &e.BaseModel)
	d.Name = crud.Ptr(e.Name)
	if e.Biography != "" {
		d.Biography = crud.Ptr(e.Biography)
	}
	if e.BirthDate != nil {
		d.BirthDate = crud.Ptr(helper.FormatDate(*e.BirthDate))
	}
	if e.Country != "" {
		d.Country = crud.Ptr(e.Country)
	}
	if e.ContactInfo != "" {
		d.ContactInfo = crud.Ptr(e.ContactInfo)
	}
	if e.PhotoPath != "" {
		d.PhotoPath = crud.Ptr(e.PhotoPath)
	}
	return d
}

func (m ArtistMapper) ToEntity(d *ArtistDTO) (*model.ArtistModel, error) {
	if d.Name == nil || strings.TrimSpace(*d.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrInvalidArgument)
	}
	e := &model.ArtistModel{}
	if err := m.apply(e, d); err != nil {
		return nil, err
	}
	return e, nil
}

func (m ArtistMapper) ApplyUpdate(e *model.ArtistModel, d *ArtistDTO) error {
	return m.apply(e, d)
}

func (ArtistMapper) apply(e *model.ArtistModel, d *ArtistDTO) error {
	if d.Name != nil {
		e.Name = strings.TrimSpace(*d.Name)
	}
	if d.Biography != nil {
		e.Biography = *d.Biography
	}
	if d.BirthDate != nil {
		bd, err := helper.ParseDate(*d.BirthDate)
		if err != nil {
			return fmt.Errorf("%w: birth_date must be YYYY-MM-DD", errs.ErrInvalidArgument)
		}
		e.BirthDate = &bd
	}
	if d.Country != nil {
		e.Country = *d.Country
	}
	if d.ContactInfo != nil {
		e.ContactInfo = *d.ContactInfo
	}
	if d.PhotoPath != nil {
		e.PhotoPath = *d.PhotoPath
	}
	return nil
}
