package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"artspace_backend/internals/crud"
	model "artspace_backend/internals/features/tickets/model"
	helper "artspace_backend/internals/helpers"
	"artspace_backend/internals/helpers/errs"
)

type TicketDTO struct {
	crud.BaseDTO
	ExhibitionID *uint      `json:"exhibition_id,omitempty"`
	UserID       *uint      `json:"user_id,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	VisitDate    *string    `json:"visit_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Price        *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=PURCHASED USED CANCELLED EXPIRED"`
	TicketCode   *string    `json:"ticket_code,omitempty"`

	// Read-only projections.
	ExhibitionTitle *string `json:"exhibition_title,omitempty"`
	UserLogin       *string `json:"user_login,omitempty"`

	// Set on purchase when the payment gateway is configured.
	PaymentURL *string `json:"payment_url,omitempty"`
}

// TicketSearchDTO is the body of POST /tickets/search (admin only).
type TicketSearchDTO struct {
	UserID        *uint   `json:"user_id,omitempty"`
	ExhibitionID  *uint   `json:"exhibition_id,omitempty"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=PURCHASED USED CANCELLED EXPIRED"`
	PurchasedOn   *string `json:"purchased_on,omitempty" validate:"omitempty,datetime=2006-01-02"`
	VisitedBefore *string `json:"visited_before,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// PurchaseDTO is the body of POST /tickets/purchase; the buyer comes from the
// session, never from the payload.
type PurchaseDTO struct {
	ExhibitionID uint    `json:"exhibition_id" validate:"required,gt=0"`
	VisitDate    *string `json:"visit_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type TicketMapper struct{}

func (TicketMapper) ToDTO(e *model.TicketModel) *TicketDTO {
	d := &TicketDTO{}
	crud.FillBase(&d.BaseDTO, &e.BaseModel)
	d.ExhibitionID = crud.Ptr(e.ExhibitionID)
	d.UserID = crud.Ptr(e.UserID)
	d.PurchaseDate = crud.Ptr(e.PurchaseDate)
	if e.VisitDate != nil {
		d.VisitDate = crud.Ptr(helper.FormatDate(*e.VisitDate))
	}
	d.Price = crud.Ptr(e.Price)
	d.Status = crud.Ptr(string(e.Status))
	d.TicketCode = crud.Ptr(e.TicketCode)
	if e.Exhibition != nil {
		d.ExhibitionTitle = crud.Ptr(e.Exhibition.Title)
	}
	if e.User != nil {
		d.UserLogin = crud.Ptr(e.User.Login)
	}
	return d
}

// ToEntity defaults purchase_date to now, status to PURCHASED and generates
// the unique ticket code. The user and exhibition references are resolved by
// the service inside the write transaction.
func (m TicketMapper) ToEntity(d *TicketDTO) (*model.TicketModel, error) {
	if d.ExhibitionID == nil || *d.ExhibitionID == 0 {
		return nil, fmt.Errorf("%w: exhibition_id is required", errs.ErrInvalidArgument)
	}
	if d.UserID == nil || *d.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id is required", errs.ErrInvalidArgument)
	}
	e := &model.TicketModel{
		PurchaseDate: time.Now(),
		Status:       model.StatusPurchased,
		TicketCode:   uuid.NewString(),
	}
	if err := m.apply(e, d); err != nil {
		return nil, err
	}
	return e, nil
}

func (m TicketMapper) ApplyUpdate(e *model.TicketModel, d *TicketDTO) error {
	return m.apply(e, d)
}

func (TicketMapper) apply(e *model.TicketModel, d *TicketDTO) error {
	if d.PurchaseDate != nil {
		e.PurchaseDate = *d.PurchaseDate
	}
	if d.VisitDate != nil {
		vd, err := helper.ParseDate(*d.VisitDate)
		if err != nil {
			return fmt.Errorf("%w: visit_date must be YYYY-MM-DD", errs.ErrInvalidArgument)
		}
		e.VisitDate = &vd
	}
	if d.Price != nil {
		e.Price = *d.Price
	}
	if d.Status != nil {
		st := model.TicketStatus(*d.Status)
		if !st.Valid() {
			return fmt.Errorf("%w: unknown status %q", errs.ErrInvalidArgument, *d.Status)
		}
		e.Status = st
	}
	if d.TicketCode != nil && *d.TicketCode != "" {
		e.TicketCode = *d.TicketCode
	}
	// user_id and exhibition_id are resolved inside the write transaction.
	return nil
}
