package model

import (
	"gorm.io/datatypes"

	"artspace_backend/internals/crud"
	artistModel "artspace_backend/internals/features/artists/model"
)

// ArtCategory is the closed set of artwork categories.
type ArtCategory string

const (
	CategoryPainting     ArtCategory = "PAINTING"
	CategorySculpture    ArtCategory = "SCULPTURE"
	CategoryPhotography  ArtCategory = "PHOTOGRAPHY"
	CategoryDigitalArt   ArtCategory = "DIGITAL_ART"
	CategoryInstallation ArtCategory = "INSTALLATION"
)

func (c ArtCategory) Valid() bool {
	switch c {
	case CategoryPainting, CategorySculpture, CategoryPhotography, CategoryDigitalArt, CategoryInstallation:
		return true
	}
	return false
}

type ArtworkModel struct {
	crud.BaseModel
	Title        string          `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description  string          `gorm:"column:description;type:text" json:"description"`
	Price        *float64        `gorm:"column:price;type:numeric(12,2)" json:"price"`
	CreationDate *datatypes.Date `gorm:"column:creation_date" json:"creation_date"`
	Medium       string          `gorm:"column:medium;type:varchar(100)" json:"medium"`
	Dimensions   string          `gorm:"column:dimensions;type:varchar(100)" json:"dimensions"`
	ImgPath      string          `gorm:"column:img_path;type:text" json:"img_path"`
	Category     ArtCategory     `gorm:"column:category;type:varchar(30)" json:"category"`

	// Optional author. The association is declared one-way; the artist side
	// projects its artwork ids with a separate query.
	ArtistID *uint                    `gorm:"column:artist_id" json:"artist_id"`
	Artist   *artistModel.ArtistModel `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
}

func (ArtworkModel) TableName() string {
	return "artworks"
}
