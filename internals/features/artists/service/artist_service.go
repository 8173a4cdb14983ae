package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"artspace_backend/internals/crud"
	dto "artspace_backend/internals/features/artists/dto"
	model "artspace_backend/internals/features/artists/model"
	artworkModel "artspace_backend/internals/features/artworks/model"
	helper "artspace_backend/internals/helpers"
	authHelper "artspace_backend/internals/helpers/auth"
	"artspace_backend/internals/helpers/errs"
)

type ArtistService struct {
	crud.Service[model.ArtistModel, dto.ArtistDTO]
}

func NewArtistService(db *gorm.DB) *ArtistService {
	s := &ArtistService{
		Service: crud.Service[model.ArtistModel, dto.ArtistDTO]{
			DB:     db,
			Mapper: dto.ArtistMapper{},
			SortKeys: map[string]string{
				"id":         "id",
				"name":       "name",
				"country":    "country",
				"birth_date": "birth_date",
			},
			DefaultSort: "name",
			Name:        "artist",
		},
	}
	s.Enricher = s
	return s
}

func (s *ArtistService) EnrichDTO(db *gorm.DB, e *model.ArtistModel, d *dto.ArtistDTO) error {
	var ids []uint
	if err := db.Model(&artworkModel.ArtworkModel{}).
		Where("artist_id = ?", e.ID).
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	d.ArtworkIDs = ids
	return nil
}

func (s *ArtistService) FindByName(ctx context.Context, name string, p helper.Params) ([]*dto.ArtistDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		return q.Where("name ILIKE ?", "%"+name+"%")
	})
}

func (s *ArtistService) FindByCountry(ctx context.Context, country string, p helper.Params) ([]*dto.ArtistDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		return q.Where("country ILIKE ?", country)
	})
}

func (s *ArtistService) Search(ctx context.Context, f dto.ArtistSearchDTO, p helper.Params) ([]*dto.ArtistDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		if f.Name != nil && *f.Name != "" {
			q = q.Where("name ILIKE ?", "%"+*f.Name+"%")
		}
		if f.Country != nil && *f.Country != "" {
			q = q.Where("country ILIKE ?", *f.Country)
		}
		return q
	})
}

// SetPhotoPath records the stored location of an uploaded portrait.
func (s *ArtistService) SetPhotoPath(ctx context.Context, id uint, path string) error {
	res := s.DB.WithContext(ctx).Model(&model.ArtistModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"photo_path": path,
			"updated_by": authHelper.ActorFrom(ctx),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: artist with id %d", errs.ErrNotFound, id)
	}
	return nil
}
