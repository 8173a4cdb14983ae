package model

import "artspace_backend/internals/crud"

type RoleModel struct {
	crud.BaseModel
	Title       string `gorm:"column:title;type:varchar(100);not null;uniqueIndex" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
}

func (RoleModel) TableName() string {
	return "roles"
}
