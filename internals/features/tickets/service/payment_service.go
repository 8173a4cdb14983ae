package service

import (
	"log"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"artspace_backend/internals/crud"
	dto "artspace_backend/internals/features/tickets/dto"
	authHelper "artspace_backend/internals/helpers/auth"
)

var (
	snapClient     snap.Client
	snapConfigured bool
)

// InitMidtrans wires the Snap client. An empty server key leaves the payment
// gateway off; tickets are then issued without a payment link.
func InitMidtrans(serverKey string) {
	if serverKey == "" {
		log.Println("[WARN] MIDTRANS_SERVER_KEY not set, ticket payment links disabled")
		return
	}
	snapClient.New(serverKey, midtrans.Sandbox)
	snapConfigured = true
}

// attachPaymentLink asks Snap for a redirect URL. A gateway failure is logged
// and swallowed: the ticket purchase already committed.
func attachPaymentLink(t *dto.TicketDTO, ident authHelper.Identity) {
	if !snapConfigured || t.TicketCode == nil || t.Price == nil || *t.Price <= 0 {
		return
	}
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  "TICKET-" + *t.TicketCode,
			GrossAmt: int64(*t.Price),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: ident.Login,
		},
	}
	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		log.Printf("[ERROR] midtrans snap transaction for ticket %s: %v", *t.TicketCode, err)
		return
	}
	t.PaymentURL = crud.Ptr(resp.RedirectURL)
}
