package dto

import (
	"fmt"
	"strings"

	"artspace_backend/internals/crud"
	model "artspace_backend/internals/features/exhibitions/model"
	helper "artspace_backend/internals/helpers"
	"artspace_backend/internals/helpers/errs"
)

type ExhibitionDTO struct {
	crud.BaseDTO
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	StartDate   *string  `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=255"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	ImagePath   *string  `json:"image_path,omitempty"`

	// Writable relationship: when present the exhibition's artwork set is
	// replaced wholesale. Absent means "leave the set alone".
	ArtworkIDs []uint `json:"artwork_ids,omitempty"`
}

// ExhibitionSearchDTO is the body of POST /exhibitions/search. start_date and
// end_date bound the exhibition window from both sides when present.
type ExhibitionSearchDTO struct {
	Title     *string `json:"title,omitempty"`
	Location  *string `json:"location,omitempty"`
	StartDate *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type ExhibitionMapper struct{}

func (ExhibitionMapper) ToDTO(e *model.ExhibitionModel) *ExhibitionDTO {
	d := &ExhibitionDTO{}
	crud.FillBase(&d.BaseDTO, &e.BaseModel)
	d.Title = crud.Ptr(e.Title)
	if e.Description != "" {
		d.Description = crud.Ptr(e.Description)
	}
	d.StartDate = crud.Ptr(helper.FormatDate(e.StartDate))
	d.EndDate = crud.Ptr(helper.FormatDate(e.EndDate))
	if e.Location != "" {
		d.Location = crud.Ptr(e.Location)
	}
	d.Price = e.Price
	if e.ImagePath != "" {
		d.ImagePath = crud.Ptr(e.ImagePath)
	}
	ids := make([]uint, 0, len(e.Artworks))
	for _, a := range e.Artworks {
		ids = append(ids, a.ID)
	}
	d.ArtworkIDs = ids
	return d
}

func (m ExhibitionMapper) ToEntity(d *ExhibitionDTO) (*model.ExhibitionModel, error) {
	if d.Title == nil || strings.TrimSpace(*d.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", errs.ErrInvalidArgument)
	}
	if d.StartDate == nil || d.EndDate == nil {
		return nil, fmt.Errorf("%w: start_date and end_date are required", errs.ErrInvalidArgument)
	}
	e := &model.ExhibitionModel{}
	if err := m.apply(e, d); err != nil {
		return nil, err
	}
	return e, nil
}

func (m ExhibitionMapper) ApplyUpdate(e *model.ExhibitionModel, d *ExhibitionDTO) error {
	return m.apply(e, d)
}

func (ExhibitionMapper) apply(e *model.ExhibitionModel, d *ExhibitionDTO) error {
	if d.Title != nil {
		e.Title = strings.TrimSpace(*d.Title)
	}
	if d.Description != nil {
		e.Description = *d.Description
	}
	if d.StartDate != nil {
		sd, err := helper.ParseDate(*d.StartDate)
		if err != nil {
			return fmt.Errorf("%w: start_date must be YYYY-MM-DD", errs.ErrInvalidArgument)
		}
		e.StartDate = sd
	}
	if d.EndDate != nil {
		ed, err := helper.ParseDate(*d.EndDate)
		if err != nil {
			return fmt.Errorf("%w: end_date must be YYYY-MM-DD", errs.ErrInvalidArgument)
		}
		e.EndDate = ed
	}
	if d.Location != nil {
		e.Location = *d.Location
	}
	if d.Price != nil {
		e.Price = d.Price
	}
	if d.ImagePath != nil {
		e.ImagePath = *d.ImagePath
	}
	// artwork_ids is resolved against the database inside the write transaction.
	return nil
}
