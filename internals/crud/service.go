package crud

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	authHelper "artspace_backend/internals/helpers/auth"
	"artspace_backend/internals/helpers/errs"

	helper "artspace_backend/internals/helpers"
)

// ServiceAPI is the contract the generic controller drives. Per-entity
// services satisfy it by embedding Service and shadowing Create/Update where
// relationships need resolving.
type ServiceAPI[D any] interface {
	GetOne(ctx context.Context, id uint) (*D, error)
	ListAll(ctx context.Context) ([]*D, error)
	ListPage(ctx context.Context, p helper.Params) ([]*D, helper.Meta, error)
	Create(ctx context.Context, d *D) (*D, error)
	Update(ctx context.Context, d *D) (*D, error)
	Delete(ctx context.Context, id uint) error
}

// Service is the generic CRUD orchestrator over one entity type E and its
// transfer object D. Writes run in a single transaction; reads are plain
// queries with the configured preloads.
type Service[E any, D any] struct {
	DB       *gorm.DB
	Mapper   Mapper[E, D]
	Resolver Resolver[E, D] // optional relationship-resolution hook
	Enricher Enricher[E, D] // optional DTO projection hook

	Preloads    []string
	SortKeys    map[string]string // sort key -> column whitelist
	DefaultSort string
	Name        string // entity name used in error messages
}

func (s *Service[E, D]) name() string {
	if s.Name != "" {
		return s.Name
	}
	return "record"
}

func (s *Service[E, D]) query(ctx context.Context) *gorm.DB {
	q := s.DB.WithContext(ctx)
	for _, p := range s.Preloads {
		q = q.Preload(p)
	}
	return q
}

func (s *Service[E, D]) toDTO(e *E) (*D, error) {
	d := s.Mapper.ToDTO(e)
	if s.Enricher != nil {
		if err := s.Enricher.EnrichDTO(s.DB, e, d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (s *Service[E, D]) GetOne(ctx context.Context, id uint) (*D, error) {
	var e E
	if err := s.query(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s with id %d", errs.ErrNotFound, s.name(), id)
		}
		return nil, err
	}
	return s.toDTO(&e)
}

func (s *Service[E, D]) ListAll(ctx context.Context) ([]*D, error) {
	var list []E
	if err := s.query(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	out := make([]*D, 0, len(list))
	for i := range list {
		d, err := s.toDTO(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *Service[E, D]) ListPage(ctx context.Context, p helper.Params) ([]*D, helper.Meta, error) {
	return s.FindPage(ctx, p)
}

// FindPage runs a count+page query with the given extra scopes. The search
// endpoints of the per-entity services pass their filter predicates here.
func (s *Service[E, D]) FindPage(ctx context.Context, p helper.Params, scopes ...func(*gorm.DB) *gorm.DB) ([]*D, helper.Meta, error) {
	var model E

	var total int64
	if err := s.DB.WithContext(ctx).Model(&model).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, helper.Meta{}, err
	}

	order, err := p.SafeOrderClause(s.SortKeys, s.DefaultSort)
	if err != nil {
		return nil, helper.Meta{}, err
	}

	var list []E
	if err := s.query(ctx).Scopes(scopes...).
		Order(order).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return nil, helper.Meta{}, err
	}

	out := make([]*D, 0, len(list))
	for i := range list {
		d, err := s.toDTO(&list[i])
		if err != nil {
			return nil, helper.Meta{}, err
		}
		out = append(out, d)
	}
	return out, helper.BuildMeta(total, p), nil
}

func (s *Service[E, D]) Create(ctx context.Context, d *D) (*D, error) {
	e, err := s.Mapper.ToEntity(d)
	if err != nil {
		return nil, err
	}
	ent := any(e).(Entity)
	ent.StampCreated(authHelper.ActorFrom(ctx))

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.Resolver != nil {
			if err := s.Resolver.ResolveRelations(tx, e, d); err != nil {
				return err
			}
		}
		return tx.Create(e).Error
	})
	if err != nil {
		return nil, s.translate(err)
	}
	return s.GetOne(ctx, ent.GetID())
}

func (s *Service[E, D]) Update(ctx context.Context, d *D) (*D, error) {
	dto := any(d).(DTO)
	id := dto.GetID()
	if id == nil {
		return nil, fmt.Errorf("%w: id is required for update", errs.ErrInvalidArgument)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e E
		if err := tx.First(&e, *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s with id %d", errs.ErrNotFound, s.name(), *id)
			}
			return err
		}
		if err := s.Mapper.ApplyUpdate(&e, d); err != nil {
			return err
		}
		if s.Resolver != nil {
			if err := s.Resolver.ResolveRelations(tx, &e, d); err != nil {
				return err
			}
		}
		any(&e).(Entity).StampUpdated(authHelper.ActorFrom(ctx))
		return tx.Save(&e).Error
	})
	if err != nil {
		return nil, s.translate(err)
	}
	return s.GetOne(ctx, *id)
}

func (s *Service[E, D]) Delete(ctx context.Context, id uint) error {
	var e E
	res := s.DB.WithContext(ctx).Delete(&e, id)
	if res.Error != nil {
		return s.translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s with id %d", errs.ErrNotFound, s.name(), id)
	}
	return nil
}

// translate maps database errors onto the shared taxonomy. Unique-key
// violations become Conflict; everything already in the taxonomy passes
// through untouched.
func (s *Service[E, D]) translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrNotFound) ||
		errors.Is(err, errs.ErrInvalidArgument) ||
		errors.Is(err, errs.ErrConflict) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: duplicate %s", errs.ErrConflict, s.name())
	}
	low := strings.ToLower(err.Error())
	if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique constraint") {
		return fmt.Errorf("%w: duplicate %s", errs.ErrConflict, s.name())
	}
	return err
}
