package model

import (
	"gorm.io/datatypes"

	"artspace_backend/internals/crud"
	artworkModel "artspace_backend/internals/features/artworks/model"
)

type ExhibitionModel struct {
	crud.BaseModel
	Title       string         `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	StartDate   datatypes.Date `gorm:"column:start_date;not null" json:"start_date"`
	EndDate     datatypes.Date `gorm:"column:end_date;not null" json:"end_date"`
	Location    string         `gorm:"column:location;type:varchar(255)" json:"location"`
	Price       *float64       `gorm:"column:price;type:numeric(12,2)" json:"price"`
	ImagePath   string         `gorm:"column:image_path;type:text" json:"image_path"`

	Artworks []artworkModel.ArtworkModel `gorm:"many2many:exhibition_artwork;joinForeignKey:exhibition_id;joinReferences:artwork_id" json:"artworks,omitempty"`
}

func (ExhibitionModel) TableName() string {
	return "exhibitions"
}
