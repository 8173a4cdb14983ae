package crud

import "gorm.io/gorm"

// Mapper converts between an entity and its transfer object. Implementations
// are explicit field-by-field copies, one per entity, so field coverage is
// checked at compile time instead of via reflection.
type Mapper[E any, D any] interface {
	// ToDTO builds the transfer object, including projections of preloaded
	// relationships (flattened reference names, id lists).
	ToDTO(e *E) *D

	// ToEntity builds a new entity from a create request. Relationship
	// references are left unset; the service resolves them inside the write
	// transaction. Returns errs.ErrInvalidArgument when a required field is
	// missing.
	ToEntity(d *D) (*E, error)

	// ApplyUpdate merges non-nil DTO fields onto the stored entity.
	// Absent (nil) fields keep their stored values. A field that cannot be
	// applied (bad date, unknown enum value) returns errs.ErrInvalidArgument
	// and aborts the write transaction.
	ApplyUpdate(e *E, d *D) error
}

// Resolver is the per-entity hook for relationship resolution. It runs inside
// the write transaction, on create and update, after ToEntity/ApplyUpdate.
// A referenced row that does not exist aborts the transaction with
// errs.ErrNotFound, so nothing is persisted.
type Resolver[E any, D any] interface {
	ResolveRelations(tx *gorm.DB, e *E, d *D) error
}

// Enricher fills DTO fields that need their own queries (id-list projections
// of relationships that are not preloaded). Runs on every read path after
// ToDTO. Optional.
type Enricher[E any, D any] interface {
	EnrichDTO(db *gorm.DB, e *E, d *D) error
}
