package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"artspace_backend/internals/crud"
	artistModel "artspace_backend/internals/features/artists/model"
	dto "artspace_backend/internals/features/artworks/dto"
	model "artspace_backend/internals/features/artworks/model"
	helper "artspace_backend/internals/helpers"
	authHelper "artspace_backend/internals/helpers/auth"
	"artspace_backend/internals/helpers/errs"
)

type ArtworkService struct {
	crud.Service[model.ArtworkModel, dto.ArtworkDTO]
}

func NewArtworkService(db *gorm.DB) *ArtworkService {
	s := &ArtworkService{
		Service: crud.Service[model.ArtworkModel, dto.ArtworkDTO]{
			DB:       db,
			Mapper:   dto.ArtworkMapper{},
			Preloads: []string{"Artist"},
			SortKeys: map[string]string{
				"id":            "id",
				"title":         "title",
				"price":         "price",
				"creation_date": "creation_date",
				"category":      "category",
			},
			DefaultSort: "title",
			Name:        "artwork",
		},
	}
	s.Resolver = s
	s.Enricher = s
	return s
}

// ResolveRelations checks the optional artist reference inside the write
// transaction so a dangling artist_id never reaches the table.
func (s *ArtworkService) ResolveRelations(tx *gorm.DB, e *model.ArtworkModel, d *dto.ArtworkDTO) error {
	if d.ArtistID == nil {
		return nil
	}
	var artist artistModel.ArtistModel
	if err := tx.First(&artist, *d.ArtistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: artist with id %d", errs.ErrNotFound, *d.ArtistID)
		}
		return err
	}
	e.ArtistID = d.ArtistID
	e.Artist = nil
	return nil
}

func (s *ArtworkService) EnrichDTO(db *gorm.DB, e *model.ArtworkModel, d *dto.ArtworkDTO) error {
	var ids []uint
	if err := db.Table("exhibition_artwork").
		Where("artwork_id = ?", e.ID).
		Pluck("exhibition_id", &ids).Error; err != nil {
		return err
	}
	d.ExhibitionIDs = ids
	return nil
}

func (s *ArtworkService) FindByTitle(ctx context.Context, title string, p helper.Params) ([]*dto.ArtworkDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		return q.Where("artworks.title ILIKE ?", "%"+title+"%")
	})
}

func (s *ArtworkService) FindByCategory(ctx context.Context, category model.ArtCategory, p helper.Params) ([]*dto.ArtworkDTO, helper.Meta, error) {
	if !category.Valid() {
		return nil, helper.Meta{}, fmt.Errorf("%w: unknown category %q", errs.ErrInvalidArgument, category)
	}
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		return q.Where("artworks.category = ?", category)
	})
}

func (s *ArtworkService) FindByArtistName(ctx context.Context, name string, p helper.Params) ([]*dto.ArtworkDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, artistNameScope(name))
}

func (s *ArtworkService) Search(ctx context.Context, f dto.ArtworkSearchDTO, p helper.Params) ([]*dto.ArtworkDTO, helper.Meta, error) {
	if f.Category != nil && !model.ArtCategory(*f.Category).Valid() {
		return nil, helper.Meta{}, fmt.Errorf("%w: unknown category %q", errs.ErrInvalidArgument, *f.Category)
	}
	var createdAfter *string
	if f.CreatedAfter != nil {
		if _, err := helper.ParseDate(*f.CreatedAfter); err != nil {
			return nil, helper.Meta{}, fmt.Errorf("%w: created_after must be YYYY-MM-DD", errs.ErrInvalidArgument)
		}
		createdAfter = f.CreatedAfter
	}

	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		if f.Title != nil && *f.Title != "" {
			q = q.Where("artworks.title ILIKE ?", "%"+*f.Title+"%")
		}
		if f.Category != nil {
			q = q.Where("artworks.category = ?", *f.Category)
		}
		if createdAfter != nil {
			q = q.Where("artworks.creation_date >= ?", *createdAfter)
		}
		if f.ArtistName != nil && *f.ArtistName != "" {
			q = artistNameScope(*f.ArtistName)(q)
		}
		return q
	})
}

// SetImagePath records the stored location of an uploaded reproduction.
func (s *ArtworkService) SetImagePath(ctx context.Context, id uint, path string) error {
	res := s.DB.WithContext(ctx).Model(&model.ArtworkModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"img_path":   path,
			"updated_by": authHelper.ActorFrom(ctx),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: artwork with id %d", errs.ErrNotFound, id)
	}
	return nil
}

func artistNameScope(name string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Joins("JOIN artists ON artists.id = artworks.artist_id").
			Where("artists.name ILIKE ?", "%"+name+"%")
	}
}
