package model

import (
	"gorm.io/datatypes"

	"artspace_backend/internals/crud"
)

type ArtistModel struct {
	crud.BaseModel
	Name        string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Biography   string          `gorm:"column:biography;type:text" json:"biography"`
	BirthDate   *datatypes.Date `gorm:"column:birth_date" json:"birth_date"`
	Country     string          `gorm:"column:country;type:varchar(100)" json:"country"`
	ContactInfo string          `gorm:"column:contact_info;type:varchar(255)" json:"contact_info"`
	PhotoPath   string          `gorm:"column:photo_path;type:text" json:"photo_path"`
}

func (ArtistModel) TableName() string {
	return "artists"
}
