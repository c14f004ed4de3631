package handlers

import (
	"errors"
	"log"
	"net/http"

	request "construtora_xpto/internal/adapter/http/dto/request"
	response "construtora_xpto/internal/adapter/http/dto/response"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles ledger payment mutations: partial/full application
// and one-shot settlement, addressed by the item's origin tag plus id.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ApplyPayment applies an amount to one ledger item, optionally capturing it
// through the payment provider first.
func (h *PaymentHandler) ApplyPayment(c *gin.Context) {
	var payload request.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	key := payload.Key()
	log.Printf("[payment][handler] apply start origin=%s id=%s amount=%.2f", key.Origin, key.ID, payload.AmountToApply)

	item, err := h.usecase.ApplyPayment(c.Request.Context(), key, payload.AmountToApply, payload.MPPayload)
	if err != nil {
		log.Printf("[payment][handler] apply failed origin=%s id=%s err=%v", key.Origin, key.ID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] apply success origin=%s id=%s paid=%.2f status=%s", key.Origin, key.ID, item.AmountPaid, item.Status)

	c.JSON(http.StatusOK, response.FromLedgerItem(item))
}

// SettleItem pays off the item's entire outstanding balance.
func (h *PaymentHandler) SettleItem(c *gin.Context) {
	var payload request.SettleItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	key := payload.Key()
	log.Printf("[payment][handler] settle start origin=%s id=%s", key.Origin, key.ID)

	item, err := h.usecase.SettleItem(c.Request.Context(), key)
	if err != nil {
		log.Printf("[payment][handler] settle failed origin=%s id=%s err=%v", key.Origin, key.ID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] settle success origin=%s id=%s status=%s", key.Origin, key.ID, item.Status)

	c.JSON(http.StatusOK, response.FromLedgerItem(item))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrUnknownOrigin):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLedgerItemNotFound):
		return pkg.NewDomainErrorSimple("LEDGER_ITEM_NOT_FOUND", "Ledger item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOverpaymentRejected):
		return pkg.NewDomainErrorSimple("OVERPAYMENT_REJECTED", "Amount exceeds the outstanding balance", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the capture", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
