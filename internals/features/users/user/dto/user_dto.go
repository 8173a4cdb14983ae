package dto

import (
	"fmt"
	"strings"

	"artspace_backend/internals/crud"
	model "artspace_backend/internals/features/users/user/model"
	helper "artspace_backend/internals/helpers"
	"artspace_backend/internals/helpers/errs"
)

// UserDTO never carries the stored hash outward: Password is write-only and
// the mapper leaves it empty on reads.
type UserDTO struct {
	crud.BaseDTO
	Login     *string `json:"login,omitempty" validate:"omitempty,min=3,max=100"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=255"`
	RoleID    *uint   `json:"role_id,omitempty"`

	// Read-only projections.
	RoleName  *string `json:"role_name,omitempty"`
	TicketIDs []uint  `json:"ticket_ids,omitempty"`
}

// UserSearchDTO is the body of POST /users/search (admin only).
type UserSearchDTO struct {
	Login     *string `json:"login,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	RoleName  *string `json:"role_name,omitempty"`
}

type UserMapper struct{}

func (UserMapper) ToDTO(e *model.UserModel) *UserDTO {
	d := &UserDTO{}
	crud.FillBase(&d.BaseDTO, &e.BaseModel)
	d.Login = crud.Ptr(e.Login)
	d.Email = crud.Ptr(e.Email)
	if e.FirstName != "" {
		d.FirstName = crud.Ptr(e.FirstName)
	}
	if e.LastName != "" {
		d.LastName = crud.Ptr(e.LastName)
	}
	if e.BirthDate != nil {
		d.BirthDate = crud.Ptr(helper.FormatDate(*e.BirthDate))
	}
	if e.Phone != "" {
		d.Phone = crud.Ptr(e.Phone)
	}
	if e.Address != "" {
		d.Address = crud.Ptr(e.Address)
	}
	d.RoleID = e.RoleID
	if e.Role != nil {
		d.RoleName = crud.Ptr(e.Role.Title)
	}
	return d
}

// ToEntity expects Password to already be a bcrypt hash; the service hashes
// before mapping.
func (m UserMapper) ToEntity(d *UserDTO) (*model.UserModel, error) {
	if d.Login == nil || strings.TrimSpace(*d.Login) == "" {
		return nil, fmt.Errorf("%w: login is required", errs.ErrInvalidArgument)
	}
	if d.Email == nil || strings.TrimSpace(*d.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", errs.ErrInvalidArgument)
	}
	if d.Password == nil || *d.Password == "" {
		return nil, fmt.Errorf("%w: password is required", errs.ErrInvalidArgument)
	}
	e := &model.UserModel{}
	if err := m.apply(e, d); err != nil {
		return nil, err
	}
	return e, nil
}

func (m UserMapper) ApplyUpdate(e *model.UserModel, d *UserDTO) error {
	return m.apply(e, d)
}

func (UserMapper) apply(e *model.UserModel, d *UserDTO) error {
	if d.Login != nil {
		e.Login = strings.TrimSpace(*d.Login)
	}
	if d.Password != nil && *d.Password != "" {
		e.Password = *d.Password
	}
	if d.Email != nil {
		e.Email = strings.ToLower(strings.TrimSpace(*d.Email))
	}
	if d.FirstName != nil {
		e.FirstName = *d.FirstName
	}
	if d.LastName != nil {
		e.LastName = *d.LastName
	}
	if d.BirthDate != nil {
		bd, err := helper.ParseDate(*d.BirthDate)
		if err != nil {
			return fmt.Errorf("%w: birth_date must be YYYY-MM-DD", errs.ErrInvalidArgument)
		}
		e.BirthDate = &bd
	}
	if d.Phone != nil {
		e.Phone = *d.Phone
	}
	if d.Address != nil {
		e.Address = *d.Address
	}
	// role_id is resolved against the database inside the write transaction.
	return nil
}
