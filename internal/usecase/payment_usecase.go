package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidAmount       = errors.New("invalid payment amount")
	ErrOverpaymentRejected = errors.New("payment exceeds outstanding balance")
	ErrLedgerItemNotFound  = errors.New("ledger item not found")
	ErrUnknownOrigin       = errors.New("unknown ledger origin")
	ErrGatewayRejected     = errors.New("payment gateway rejected the capture")
)

// IPaymentUseCase is the partial payment engine.
//
// ApplyPayment settles an increment against one ledger item's outstanding
// balance; the mutation hits only the underlying entity and the unified
// ledger is rebuilt by the aggregator on the next read (no incremental
// patching of derived aggregates).

type IPaymentUseCase interface {
	ApplyPayment(ctx context.Context, key entities.LedgerItemKey, amount float64, mpPayload json.RawMessage) (entities.LedgerItem, error)
	SettleItem(ctx context.Context, key entities.LedgerItemKey) (entities.LedgerItem, error)
}

type PaymentUseCase struct {
	expenseRepo interfaces.IGeneralExpenseRepository
	paymentRepo interfaces.IServicePaymentRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(expenseRepo interfaces.IGeneralExpenseRepository, paymentRepo interfaces.IServicePaymentRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{expenseRepo: expenseRepo, paymentRepo: paymentRepo, gateway: gateway}
}

// ApplyPayment applies amount against the item identified by key.
//
// The optional mpPayload routes the charge through the configured payment
// gateway before the balance is touched; accounting state never depends on
// the gateway round trip succeeding for a nil payload.
func (u *PaymentUseCase) ApplyPayment(ctx context.Context, key entities.LedgerItemKey, amount float64, mpPayload json.RawMessage) (entities.LedgerItem, error) {
	key.ID = strings.TrimSpace(key.ID)
	if key.ID == "" {
		return entities.LedgerItem{}, ErrLedgerItemNotFound
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return entities.LedgerItem{}, ErrInvalidAmount
	}

	current, err := u.loadItem(ctx, key)
	if err != nil {
		return entities.LedgerItem{}, err
	}

	// The tolerance band is half-open: an increment exactly ε over the
	// outstanding balance is already an overpayment, so paid can never land
	// above total+ε.
	if amount >= current.Outstanding()+entities.MoneyEpsilon {
		log.Printf("[payment][usecase] overpayment rejected origin=%s id=%s amount=%.2f outstanding=%.2f", key.Origin, key.ID, amount, current.Outstanding())
		return entities.LedgerItem{}, ErrOverpaymentRejected
	}

	if len(mpPayload) > 0 {
		if err := u.capture(ctx, key, amount, mpPayload); err != nil {
			return entities.LedgerItem{}, err
		}
	}

	newPaid := current.AmountPaid + amount
	status := entities.PayableStatusParcial
	if newPaid >= current.TotalAmount-entities.MoneyEpsilon {
		status = entities.PayableStatusPago
	}

	updated, err := u.storePaid(ctx, key, newPaid, status)
	if err != nil {
		return entities.LedgerItem{}, err
	}
	log.Printf("[payment][usecase] payment applied origin=%s id=%s amount=%.2f paid=%.2f status=%s", key.Origin, key.ID, amount, updated.AmountPaid, updated.Status)
	return updated, nil
}

// SettleItem marks the item fully paid; equivalent to applying the whole
// outstanding balance. Settling an already settled item is a no-op.
func (u *PaymentUseCase) SettleItem(ctx context.Context, key entities.LedgerItemKey) (entities.LedgerItem, error) {
	key.ID = strings.TrimSpace(key.ID)
	if key.ID == "" {
		return entities.LedgerItem{}, ErrLedgerItemNotFound
	}

	current, err := u.loadItem(ctx, key)
	if err != nil {
		return entities.LedgerItem{}, err
	}
	if current.Settled() {
		return current, nil
	}
	return u.ApplyPayment(ctx, key, current.Outstanding(), nil)
}

// loadItem resolves key to the underlying entity via its origin tag.
func (u *PaymentUseCase) loadItem(ctx context.Context, key entities.LedgerItemKey) (entities.LedgerItem, error) {
	switch key.Origin {
	case entities.OriginExpense:
		e, err := u.expenseRepo.GetByID(ctx, key.ID)
		if err != nil {
			return entities.LedgerItem{}, err
		}
		if e.ID == "" {
			return entities.LedgerItem{}, ErrLedgerItemNotFound
		}
		return itemFromExpense(e), nil
	case entities.OriginServicePayment:
		p, err := u.paymentRepo.GetByID(ctx, key.ID)
		if err != nil {
			return entities.LedgerItem{}, err
		}
		if p.ID == "" {
			return entities.LedgerItem{}, ErrLedgerItemNotFound
		}
		return itemFromServicePayment(p), nil
	default:
		return entities.LedgerItem{}, ErrUnknownOrigin
	}
}

func (u *PaymentUseCase) storePaid(ctx context.Context, key entities.LedgerItemKey, paid float64, status entities.PayableStatus) (entities.LedgerItem, error) {
	switch key.Origin {
	case entities.OriginExpense:
		e, err := u.expenseRepo.UpdatePaid(ctx, key.ID, paid, status)
		if err != nil {
			return entities.LedgerItem{}, err
		}
		if e.ID == "" {
			return entities.LedgerItem{}, ErrLedgerItemNotFound
		}
		return itemFromExpense(e), nil
	case entities.OriginServicePayment:
		p, err := u.paymentRepo.UpdatePaid(ctx, key.ID, paid, status)
		if err != nil {
			return entities.LedgerItem{}, err
		}
		if p.ID == "" {
			return entities.LedgerItem{}, ErrLedgerItemNotFound
		}
		return itemFromServicePayment(p), nil
	default:
		return entities.LedgerItem{}, ErrUnknownOrigin
	}
}

// capture routes the charge through the external gateway, enriching the
// payload with the ledger linkage the provider echoes back on webhooks.
func (u *PaymentUseCase) capture(ctx context.Context, key entities.LedgerItemKey, amount float64, mpPayload json.RawMessage) error {
	if u.gateway == nil {
		log.Printf("[payment][usecase] capture requested but gateway not configured origin=%s id=%s", key.Origin, key.ID)
		return ErrGatewayRejected
	}
	if !json.Valid(mpPayload) {
		return ErrInvalidAmount
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = fmt.Sprintf("%s/%s", key.Origin, key.ID)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] gateway capture failed origin=%s id=%s err=%v", key.Origin, key.ID, err)
		return fmt.Errorf("%w: %v", ErrGatewayRejected, err)
	}
	log.Printf("[payment][usecase] gateway capture success origin=%s id=%s provider_payment_id=%s provider_status=%s", key.Origin, key.ID, providerID, providerStatus)
	return nil
}
