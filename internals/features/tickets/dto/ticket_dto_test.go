package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artspace_backend/internals/crud"
	model "artspace_backend/internals/features/tickets/model"
	"artspace_backend/internals/helpers/errs"
)

func TestToEntityDefaults(t *testing.T) {
	e, err := TicketMapper{}.ToEntity(&TicketDTO{
		ExhibitionID: crud.Ptr(uint(3)),
		UserID:       crud.Ptr(uint(7)),
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPurchased, e.Status)
	assert.NotEmpty(t, e.TicketCode)
	assert.WithinDuration(t, time.Now(), e.PurchaseDate, time.Minute)
}

func TestToEntityGeneratesUniqueCodes(t *testing.T) {
	d := &TicketDTO{ExhibitionID: crud.Ptr(uint(3)), UserID: crud.Ptr(uint(7))}
	a, err := TicketMapper{}.ToEntity(d)
	require.NoError(t, err)
	b, err := TicketMapper{}.ToEntity(d)
	require.NoError(t, err)
	assert.NotEqual(t, a.TicketCode, b.TicketCode)
}

func TestToEntityRequiresReferences(t *testing.T) {
	_, err := TicketMapper{}.ToEntity(&TicketDTO{UserID: crud.Ptr(uint(7))})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = TicketMapper{}.ToEntity(&TicketDTO{ExhibitionID: crud.Ptr(uint(3))})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestApplyUpdateRejectsUnknownStatus(t *testing.T) {
	e := &model.TicketModel{Status: model.StatusPurchased}
	err := TicketMapper{}.apply(e, &TicketDTO{Status: crud.Ptr("REFUNDED")})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Equal(t, model.StatusPurchased, e.Status)
}
