package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"artspace_backend/internals/crud"
	artworkModel "artspace_backend/internals/features/artworks/model"
	dto "artspace_backend/internals/features/exhibitions/dto"
	model "artspace_backend/internals/features/exhibitions/model"
	helper "artspace_backend/internals/helpers"
	"artspace_backend/internals/helpers/errs"
)

type ExhibitionService struct {
	crud.Service[model.ExhibitionModel, dto.ExhibitionDTO]
}

func NewExhibitionService(db *gorm.DB) *ExhibitionService {
	s := &ExhibitionService{
		Service: crud.Service[model.ExhibitionModel, dto.ExhibitionDTO]{
			DB:       db,
			Mapper:   dto.ExhibitionMapper{},
			Preloads: []string{"Artworks"},
			SortKeys: map[string]string{
				"id":         "id",
				"title":      "title",
				"start_date": "start_date",
				"end_date":   "end_date",
				"price":      "price",
			},
			DefaultSort: "start_date",
			Name:        "exhibition",
		},
	}
	s.Resolver = s
	return s
}

// ResolveRelations validates the window and, when artwork_ids is present,
// replaces the exhibition's artwork set inside the write transaction. A single
// missing artwork aborts the whole write.
func (s *ExhibitionService) ResolveRelations(tx *gorm.DB, e *model.ExhibitionModel, d *dto.ExhibitionDTO) error {
	if time.Time(e.EndDate).Before(time.Time(e.StartDate)) {
		return fmt.Errorf("%w: end_date is before start_date", errs.ErrInvalidArgument)
	}
	if d.ArtworkIDs == nil {
		return nil
	}

	seen := make(map[uint]struct{}, len(d.ArtworkIDs))
	for _, id := range d.ArtworkIDs {
		seen[id] = struct{}{}
	}
	var arts []artworkModel.ArtworkModel
	if len(seen) > 0 {
		if err := tx.Find(&arts, d.ArtworkIDs).Error; err != nil {
			return err
		}
		if len(arts) != len(seen) {
			return fmt.Errorf("%w: one or more artworks do not exist", errs.ErrNotFound)
		}
	}

	if e.ID == 0 {
		// Create path: gorm persists the join rows with the insert.
		e.Artworks = arts
		return nil
	}
	e.Artworks = nil
	return tx.Model(e).Association("Artworks").Replace(&arts)
}

// FindCurrent lists exhibitions whose window contains today.
func (s *ExhibitionService) FindCurrent(ctx context.Context, p helper.Params) ([]*dto.ExhibitionDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		return q.Where("start_date <= CURRENT_DATE AND end_date >= CURRENT_DATE")
	})
}

// FindUpcoming lists exhibitions that have not opened yet.
func (s *ExhibitionService) FindUpcoming(ctx context.Context, p helper.Params) ([]*dto.ExhibitionDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		return q.Where("start_date > CURRENT_DATE")
	})
}

func (s *ExhibitionService) FindByTitle(ctx context.Context, title string, p helper.Params) ([]*dto.ExhibitionDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		return q.Where("title ILIKE ?", "%"+title+"%")
	})
}

func (s *ExhibitionService) Search(ctx context.Context, f dto.ExhibitionSearchDTO, p helper.Params) ([]*dto.ExhibitionDTO, helper.Meta, error) {
	for _, d := range []*string{f.StartDate, f.EndDate} {
		if d != nil {
			if _, err := helper.ParseDate(*d); err != nil {
				return nil, helper.Meta{}, fmt.Errorf("%w: dates must be YYYY-MM-DD", errs.ErrInvalidArgument)
			}
		}
	}
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		if f.Title != nil && *f.Title != "" {
			q = q.Where("title ILIKE ?", "%"+*f.Title+"%")
		}
		if f.Location != nil && *f.Location != "" {
			q = q.Where("location ILIKE ?", "%"+*f.Location+"%")
		}
		if f.StartDate != nil {
			q = q.Where("start_date >= ?", *f.StartDate)
		}
		if f.EndDate != nil {
			q = q.Where("end_date <= ?", *f.EndDate)
		}
		return q
	})
}
