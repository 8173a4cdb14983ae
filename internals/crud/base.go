package crud

import "time"

// BaseModel is the audit-stamped base embedded by every entity.
// created_when/updated_when are maintained by GORM; created_by/updated_by
// are stamped by the generic service from the request identity.
// is_deleted exists in the schema but no read path filters on it and no
// write path sets it; delete is a hard delete.
type BaseModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedWhen time.Time `gorm:"column:created_when;autoCreateTime" json:"created_when"`
	CreatedBy   string    `gorm:"column:created_by;type:varchar(100)" json:"created_by,omitempty"`
	UpdatedWhen time.Time `gorm:"column:updated_when;autoUpdateTime" json:"updated_when"`
	UpdatedBy   string    `gorm:"column:updated_by;type:varchar(100)" json:"updated_by,omitempty"`
	IsDeleted   bool      `gorm:"column:is_deleted;default:false" json:"is_deleted"`
}

func (m *BaseModel) GetID() uint { return m.ID }

func (m *BaseModel) StampCreated(actor string) { m.CreatedBy = actor }
func (m *BaseModel) StampUpdated(actor string) { m.UpdatedBy = actor }

// Entity is what the generic service needs from every model pointer.
// *BaseModel satisfies it, so embedding BaseModel is enough.
type Entity interface {
	GetID() uint
	StampCreated(actor string)
	StampUpdated(actor string)
}

// BaseDTO mirrors BaseModel at the API boundary. All fields are pointers so
// the partial-update merge can tell "absent" from "zero".
type BaseDTO struct {
	ID          *uint      `json:"id,omitempty"`
	CreatedWhen *time.Time `json:"created_when,omitempty"`
	CreatedBy   *string    `json:"created_by,omitempty"`
	UpdatedWhen *time.Time `json:"updated_when,omitempty"`
	UpdatedBy   *string    `json:"updated_by,omitempty"`
	IsDeleted   *bool      `json:"is_deleted,omitempty"`
}

func (d *BaseDTO) GetID() *uint  { return d.ID }
func (d *BaseDTO) SetID(id uint) { d.ID = &id }

// DTO is what the generic service needs from every transfer-object pointer.
type DTO interface {
	GetID() *uint
}

// Ptr is the pointer-literal shorthand the mappers use.
func Ptr[T any](v T) *T { return &v }

// FillBase copies the audit columns onto a DTO.
func FillBase(d *BaseDTO, m *BaseModel) {
	id := m.ID
	createdWhen := m.CreatedWhen
	updatedWhen := m.UpdatedWhen
	isDeleted := m.IsDeleted
	d.ID = &id
	d.CreatedWhen = &createdWhen
	d.UpdatedWhen = &updatedWhen
	d.IsDeleted = &isDeleted
	if m.CreatedBy != "" {
		createdBy := m.CreatedBy
		d.CreatedBy = &createdBy
	}
	if m.UpdatedBy != "" {
		updatedBy := m.UpdatedBy
		d.UpdatedBy = &updatedBy
	}
}
