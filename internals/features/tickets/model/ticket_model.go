package model

import (
	"time"

	"gorm.io/datatypes"

	"artspace_backend/internals/crud"
	exhibitionModel "artspace_backend/internals/features/exhibitions/model"
	userModel "artspace_backend/internals/features/users/user/model"
)

// TicketStatus is the closed set of ticket lifecycle states.
type TicketStatus string

const (
	StatusPurchased TicketStatus = "PURCHASED"
	StatusUsed      TicketStatus = "USED"
	StatusCancelled TicketStatus = "CANCELLED"
	StatusExpired   TicketStatus = "EXPIRED"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case StatusPurchased, StatusUsed, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

type TicketModel struct {
	crud.BaseModel
	ExhibitionID uint                             `gorm:"column:exhibition_id;not null" json:"exhibition_id"`
	Exhibition   *exhibitionModel.ExhibitionModel `gorm:"foreignKey:ExhibitionID" json:"exhibition,omitempty"`
	UserID       uint                             `gorm:"column:user_id;not null" json:"user_id"`
	User         *userModel.UserModel             `gorm:"foreignKey:UserID" json:"user,omitempty"`

	PurchaseDate time.Time       `gorm:"column:purchase_date;not null" json:"purchase_date"`
	VisitDate    *datatypes.Date `gorm:"column:visit_date" json:"visit_date"`
	Price        float64         `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Status       TicketStatus    `gorm:"column:status;type:varchar(20);not null" json:"status"`
	TicketCode   string          `gorm:"column:ticket_code;type:varchar(64);not null;uniqueIndex" json:"ticket_code"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
