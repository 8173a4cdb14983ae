package controller

import (
	"gorm.io/gorm"

	"artspace_backend/internals/crud"
	dto "artspace_backend/internals/features/users/role/dto"
	service "artspace_backend/internals/features/users/role/service"
	helper "artspace_backend/internals/helpers"
)

type RoleController struct {
	crud.Controller[dto.RoleDTO]
}

func NewRoleController(db *gorm.DB) *RoleController {
	ctrl := &RoleController{
		Controller: crud.NewController[dto.RoleDTO](service.NewRoleService(db)),
	}
	ctrl.PageOpts = helper.AdminOpts
	return ctrl
}
