package service

import (
	"gorm.io/gorm"

	"artspace_backend/internals/crud"
	dto "artspace_backend/internals/features/users/role/dto"
	model "artspace_backend/internals/features/users/role/model"
	userModel "artspace_backend/internals/features/users/user/model"
)

type RoleService struct {
	crud.Service[model.RoleModel, dto.RoleDTO]
}

func NewRoleService(db *gorm.DB) *RoleService {
	s := &RoleService{
		Service: crud.Service[model.RoleModel, dto.RoleDTO]{
			DB:     db,
			Mapper: dto.RoleMapper{},
			SortKeys: map[string]string{
				"id":    "id",
				"title": "title",
			},
			DefaultSort: "id",
			Name:        "role",
		},
	}
	s.Enricher = s
	return s
}

func (s *RoleService) EnrichDTO(db *gorm.DB, e *model.RoleModel, d *dto.RoleDTO) error {
	var ids []uint
	if err := db.Model(&userModel.UserModel{}).
		Where("role_id = ?", e.ID).
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	d.UserIDs = ids
	return nil
}
