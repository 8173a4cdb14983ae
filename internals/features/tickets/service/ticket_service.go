package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"artspace_backend/internals/crud"
	exhibitionModel "artspace_backend/internals/features/exhibitions/model"
	dto "artspace_backend/internals/features/tickets/dto"
	model "artspace_backend/internals/features/tickets/model"
	userModel "artspace_backend/internals/features/users/user/model"
	helper "artspace_backend/internals/helpers"
	authHelper "artspace_backend/internals/helpers/auth"
	"artspace_backend/internals/helpers/errs"
)

type TicketService struct {
	crud.Service[model.TicketModel, dto.TicketDTO]
}

func NewTicketService(db *gorm.DB) *TicketService {
	s := &TicketService{
		Service: crud.Service[model.TicketModel, dto.TicketDTO]{
			DB:       db,
			Mapper:   dto.TicketMapper{},
			Preloads: []string{"Exhibition", "User"},
			SortKeys: map[string]string{
				"id":            "id",
				"purchase_date": "purchase_date",
				"visit_date":    "visit_date",
				"price":         "price",
				"status":        "status",
			},
			DefaultSort: "purchase_date",
			Name:        "ticket",
		},
	}
	s.Resolver = s
	return s
}

// ResolveRelations requires both references to exist; a dangling one aborts
// the write. When no explicit price is set the exhibition's admission price
// is carried onto the ticket.
func (s *TicketService) ResolveRelations(tx *gorm.DB, e *model.TicketModel, d *dto.TicketDTO) error {
	if d.ExhibitionID != nil {
		var ex exhibitionModel.ExhibitionModel
		if err := tx.First(&ex, *d.ExhibitionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: exhibition with id %d", errs.ErrNotFound, *d.ExhibitionID)
			}
			return err
		}
		e.ExhibitionID = ex.ID
		e.Exhibition = nil
		if d.Price == nil && e.Price == 0 && ex.Price != nil {
			e.Price = *ex.Price
		}
	}
	if d.UserID != nil {
		var u userModel.UserModel
		if err := tx.First(&u, *d.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user with id %d", errs.ErrNotFound, *d.UserID)
			}
			return err
		}
		e.UserID = u.ID
		e.User = nil
	}
	return nil
}

// Purchase creates a PURCHASED ticket for the authenticated user and, when
// the payment gateway is configured, attaches a payment link. The bootstrap
// administrator has no user row and cannot buy tickets.
func (s *TicketService) Purchase(ctx context.Context, ident authHelper.Identity, req dto.PurchaseDTO) (*dto.TicketDTO, error) {
	if ident.IsBootstrapAdmin() {
		return nil, fmt.Errorf("%w: the bootstrap administrator cannot purchase tickets", errs.ErrInvalidArgument)
	}
	d := &dto.TicketDTO{
		ExhibitionID: crud.Ptr(req.ExhibitionID),
		UserID:       crud.Ptr(ident.UserID),
		VisitDate:    req.VisitDate,
	}
	created, err := s.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	attachPaymentLink(created, ident)
	return created, nil
}

// FindMine lists the authenticated user's own tickets.
func (s *TicketService) FindMine(ctx context.Context, userID uint, p helper.Params) ([]*dto.TicketDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		return q.Where("tickets.user_id = ?", userID)
	})
}

func (s *TicketService) FindByExhibition(ctx context.Context, exhibitionID uint, p helper.Params) ([]*dto.TicketDTO, helper.Meta, error) {
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		return q.Where("tickets.exhibition_id = ?", exhibitionID)
	})
}

func (s *TicketService) Search(ctx context.Context, f dto.TicketSearchDTO, p helper.Params) ([]*dto.TicketDTO, helper.Meta, error) {
	for _, d := range []*string{f.PurchasedOn, f.VisitedBefore} {
		if d != nil {
			if _, err := helper.ParseDate(*d); err != nil {
				return nil, helper.Meta{}, fmt.Errorf("%w: dates must be YYYY-MM-DD", errs.ErrInvalidArgument)
			}
		}
	}
	return s.FindPage(ctx, p, func(q *gorm.DB) *gorm.DB {
		if f.UserID != nil {
			q = q.Where("tickets.user_id = ?", *f.UserID)
		}
		if f.ExhibitionID != nil {
			q = q.Where("tickets.exhibition_id = ?", *f.ExhibitionID)
		}
		if f.Status != nil {
			q = q.Where("tickets.status = ?", *f.Status)
		}
		if f.PurchasedOn != nil {
			q = q.Where("tickets.purchase_date::date = ?", *f.PurchasedOn)
		}
		if f.VisitedBefore != nil {
			q = q.Where("tickets.visit_date < ?", *f.VisitedBefore)
		}
		return q
	})
}
