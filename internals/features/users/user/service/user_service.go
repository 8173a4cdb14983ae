package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"artspace_backend/internals/constants"
	"artspace_backend/internals/crud"
	ticketModel "artspace_backend/internals/features/tickets/model"
	authPw "artspace_backend/internals/features/users/auth/helper"
	roleModel "artspace_backend/internals/features/users/role/model"
	dto "artspace_backend/internals/features/users/user/dto"
	model "artspace_backend/internals/features/users/user/model"
	helper "artspace_backend/internals/helpers"
	"artspace_backend/internals/helpers/errs"
)

type UserService struct {
	crud.Service[model.UserModel, dto.UserDTO]
}

func NewUserService(db *gorm.DB) *UserService {
	s := &UserService{
		Service: crud.Service[model.UserModel, dto.UserDTO]{
			DB:       db,
			Mapper:   dto.UserMapper{},
			Preloads: []string{"Role"},
			SortKeys: map[string]string{
				"id":         "id",
				"login":      "login",
				"email":      "email",
				"first_name": "first_name",
				"last_name":  "last_name",
			},
			DefaultSort: "id",
			Name:        "user",
		},
	}
	s.Resolver = s
	s.Enricher = s
	return s
}

// Create hashes the plaintext password before the generic pipeline maps and
// persists the user.
func (s *UserService) Create(ctx context.Context, d *dto.UserDTO) (*dto.UserDTO, error) {
	if d.Password == nil || *d.Password == "" {
		return nil, fmt.Errorf("%w: password is required", errs.ErrInvalidArgument)
	}
	hash, err := authPw.HashPassword(*d.Password)
	if err != nil {
		return nil, err
	}
	hashed := *d
	hashed.Password = &hash
	return s.Service.Create(ctx, &hashed)
}

// Update hashes the password when one is provided; an empty string means
// "keep the current one".
func (s *UserService) Update(ctx context.Context, d *dto.UserDTO) (*dto.UserDTO, error) {
	patched := *d
	if d.Password != nil && *d.Password != "" {
		hash, err := authPw.HashPassword(*d.Password)
		if err != nil {
			return nil, err
		}
		patched.Password = &hash
	} else {
		patched.Password = nil
	}
	return s.Service.Update(ctx, &patched)
}

// ResolveRelations validates an explicit role reference and defaults new
// users to the USER role.
func (s *UserService) ResolveRelations(tx *gorm.DB, e *model.UserModel, d *dto.UserDTO) error {
	if d.RoleID != nil {
		var role roleModel.RoleModel
		if err := tx.First(&role, *d.RoleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: role with id %d", errs.ErrNotFound, *d.RoleID)
			}
			return err
		}
		e.RoleID = d.RoleID
		e.Role = nil
		return nil
	}
	if e.ID == 0 && e.RoleID == nil {
		var role roleModel.RoleModel
		if err := tx.Where("title = ?", constants.RoleUser).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: default role %q is not seeded", errs.ErrNotFound, constants.RoleUser)
			}
			return err
		}
		e.RoleID = &role.ID
	}
	return nil
}

func (s *UserService) EnrichDTO(db *gorm.DB, e *model.UserModel, d *dto.UserDTO) error {
	var ids []uint
	if err := db.Model(&ticketModel.TicketModel{}).
		Where("user_id = ?", e.ID).
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	d.TicketIDs = ids
	return nil
}

func (s *UserService) FindByLogin(ctx context.Context, login string) (*dto.UserDTO, error) {
	var e model.UserModel
	err := s.DB.WithContext(ctx).Preload("Role").
		Where("login = ?", login).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user with login %q", errs.ErrNotFound, login)
		}
		return nil, err
	}
	d := s.Mapper.ToDTO(&e)
	if err := s.EnrichDTO(s.DB, &e, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *UserService) FindByFullName(ctx context.Context, name string, p helper.Params) ([]*dto.UserDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		like := "%" + name + "%"
		return q.Where("(users.first_name || ' ' || users.last_name) ILIKE ?", like)
	})
}

func (s *UserService) Search(ctx context.Context, f dto.UserSearchDTO, p helper.Params) ([]*dto.UserDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		if f.Login != nil && *f.Login != "" {
			q = q.Where("users.login ILIKE ?", "%"+*f.Login+"%")
		}
		if f.Email != nil && *f.Email != "" {
			q = q.Where("users.email ILIKE ?", "%"+*f.Email+"%")
		}
		if f.FirstName != nil && *f.FirstName != "" {
			q = q.Where("users.first_name ILIKE ?", "%"+*f.FirstName+"%")
		}
		if f.LastName != nil && *f.LastName != "" {
			q = q.Where("users.last_name ILIKE ?", "%"+*f.LastName+"%")
		}
		if f.RoleName != nil && *f.RoleName != "" {
			q = q.Joins("JOIN roles ON roles.id = users.role_id").
				Where("roles.title ILIKE ?", *f.RoleName)
		}
		return q
	})
}
