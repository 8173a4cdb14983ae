package model

import (
	"gorm.io/datatypes"

	"artspace_backend/internals/crud"
	roleModel "artspace_backend/internals/features/users/role/model"
)

type UserModel struct {
	crud.BaseModel
	Login     string          `gorm:"column:login;type:varchar(100);not null;uniqueIndex" json:"login"`
	Password  string          `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Email     string          `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	FirstName string          `gorm:"column:first_name;type:varchar(100)" json:"first_name"`
	LastName  string          `gorm:"column:last_name;type:varchar(100)" json:"last_name"`
	BirthDate *datatypes.Date `gorm:"column:birth_date" json:"birth_date"`
	Phone     string          `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Address   string          `gorm:"column:address;type:varchar(255)" json:"address"`

	RoleID *uint                `gorm:"column:role_id" json:"role_id"`
	Role   *roleModel.RoleModel `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
