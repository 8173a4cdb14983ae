package dto

import (
	"fmt"
	"strings"

	"artspace_backend/internals/crud"
	model "artspace_backend/internals/features/artworks/model"
	helper "artspace_backend/internals/helpers"
	"artspace_backend/internals/helpers/errs"
)

type ArtworkDTO struct {
	crud.BaseDTO
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	CreationDate *string  `json:"creation_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Medium       *string  `json:"medium,omitempty" validate:"omitempty,max=100"`
	Dimensions   *string  `json:"dimensions,omitempty" validate:"omitempty,max=100"`
	ImgPath      *string  `json:"img_path,omitempty"`
	Category     *string  `json:"category,omitempty" validate:"omitempty,oneof=PAINTING SCULPTURE PHOTOGRAPHY DIGITAL_ART INSTALLATION"`
	ArtistID     *uint    `json:"artist_id,omitempty"`

	// Read-only projections.
	ArtistName    *string `json:"artist_name,omitempty"`
	ExhibitionIDs []uint  `json:"exhibition_ids,omitempty"`
}

// ArtworkSearchDTO is the body of POST /artworks/search.
type ArtworkSearchDTO struct {
	Title        *string `json:"title,omitempty"`
	Category     *string `json:"category,omitempty" validate:"omitempty,oneof=PAINTING SCULPTURE PHOTOGRAPHY DIGITAL_ART INSTALLATION"`
	CreatedAfter *string `json:"created_after,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ArtistName   *string `json:"artist_name,omitempty"`
}

type ArtworkMapper struct{}

func (ArtworkMapper) ToDTO(e *model.ArtworkModel) *ArtworkDTO {
	d := &ArtworkDTO{}
	crud.FillBase(&d.BaseDTO, &e.BaseModel)
	d.Title = crud.Ptr(e.Title)
	if e.Description != "" {
		d.Description = crud.Ptr(e.Description)
	}
	d.Price = e.Price
	if e.CreationDate != nil {
		d.CreationDate = crud.Ptr(helper.FormatDate(*e.CreationDate))
	}
	if e.Medium != "" {
		d.Medium = crud.Ptr(e.Medium)
	}
	if e.Dimensions != "" {
		d.Dimensions = crud.Ptr(e.Dimensions)
	}
	if e.ImgPath != "" {
		d.ImgPath = crud.Ptr(e.ImgPath)
	}
	if e.Category != "" {
		d.Category = crud.Ptr(string(e.Category))
	}
	d.ArtistID = e.ArtistID
	if e.Artist != nil {
		d.ArtistName = crud.Ptr(e.Artist.Name)
	}
	return d
}

func (m ArtworkMapper) ToEntity(d *ArtworkDTO) (*model.ArtworkModel, error) {
	if d.Title == nil || strings.TrimSpace(*d.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", errs.ErrInvalidArgument)
	}
	e := &model.ArtworkModel{}
	if err := m.apply(e, d); err != nil {
		return nil, err
	}
	return e, nil
}

func (m ArtworkMapper) ApplyUpdate(e *model.ArtworkModel, d *ArtworkDTO) error {
	return m.apply(e, d)
}

func (ArtworkMapper) apply(e *model.ArtworkModel, d *ArtworkDTO) error {
	if d.Title != nil {
		e.Title = strings.TrimSpace(*d.Title)
	}
	if d.Description != nil {
		e.Description = *d.Description
	}
	if d.Price != nil {
		e.Price = d.Price
	}
	if d.CreationDate != nil {
		cd, err := helper.ParseDate(*d.CreationDate)
		if err != nil {
			return fmt.Errorf("%w: creation_date must be YYYY-MM-DD", errs.ErrInvalidArgument)
		}
		e.CreationDate = &cd
	}
	if d.Medium != nil {
		e.Medium = *d.Medium
	}
	if d.Dimensions != nil {
		e.Dimensions = *d.Dimensions
	}
	if d.ImgPath != nil {
		e.ImgPath = *d.ImgPath
	}
	if d.Category != nil {
		cat := model.ArtCategory(*d.Category)
		if !cat.Valid() {
			return fmt.Errorf("%w: unknown category %q", errs.ErrInvalidArgument, *d.Category)
		}
		e.Category = cat
	}
	// artist_id is resolved against the database inside the write transaction.
	return nil
}
