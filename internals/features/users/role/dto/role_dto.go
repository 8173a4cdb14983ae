package dto

import (
	"fmt"
	"strings"

	"artspace_backend/internals/crud"
	model "artspace_backend/internals/features/users/role/model"
	"artspace_backend/internals/helpers/errs"
)

type RoleDTO struct {
	crud.BaseDTO
	Title       *string `json:"title,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty"`

	// Read-only projection of the users holding this role.
	UserIDs []uint `json:"user_ids,omitempty"`
}

type RoleMapper struct{}

func (RoleMapper) ToDTO(e *model.RoleModel) *RoleDTO {
	d := &RoleDTO{}
	crud.FillBase(&d.BaseDTO, &e.BaseModel)
	d.Title = crud.Ptr(e.Title)
	if e.Description != "" {
		d.Description = crud.Ptr(e.Description)
	}
	return d
}

func (RoleMapper) ToEntity(d *RoleDTO) (*model.RoleModel, error) {
	if d.Title == nil || strings.TrimSpace(*d.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", errs.ErrInvalidArgument)
	}
	e := &model.RoleModel{Title: strings.TrimSpace(*d.Title)}
	if d.Description != nil {
		e.Description = *d.Description
	}
	return e, nil
}

func (RoleMapper) ApplyUpdate(e *model.RoleModel, d *RoleDTO) error {
	if d.Title != nil {
		e.Title = strings.TrimSpace(*d.Title)
	}
	if d.Description != nil {
		e.Description = *d.Description
	}
	return nil
}
