package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"construtora_xpto/internal/adapter/http/handlers/mocks"
	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_ApplyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/apply", h.ApplyPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/apply", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("overpayment rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/apply", h.ApplyPayment)

		key := entities.LedgerItemKey{Origin: entities.OriginExpense, ID: "e-1"}
		uc.EXPECT().ApplyPayment(gomock.Any(), key, 500.0, gomock.Any()).Return(entities.LedgerItem{}, usecase.ErrOverpaymentRejected)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/apply", bytes.NewBufferString(`{"item_origin":"expense","item_id":"e-1","amount_to_apply":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success returns updated item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/apply", h.ApplyPayment)

		key := entities.LedgerItemKey{Origin: entities.OriginExpense, ID: "e-1"}
		uc.EXPECT().ApplyPayment(gomock.Any(), key, 100.0, gomock.Any()).Return(entities.LedgerItem{
			Key:         key,
			Description: "Cimento",
			TotalAmount: 300,
			AmountPaid:  100,
			Status:      entities.PayableStatusParcial,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/apply", bytes.NewBufferString(`{"item_origin":"expense","item_id":"e-1","amount_to_apply":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != string(entities.PayableStatusParcial) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["outstanding"] != 200.0 {
			t.Fatalf("expected outstanding 200, got body: %s", w.Body.String())
		}
	})

	t.Run("forwards mp payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/apply", h.ApplyPayment)

		key := entities.LedgerItemKey{Origin: entities.OriginServicePayment, ID: "p-1"}
		uc.EXPECT().ApplyPayment(gomock.Any(), key, 50.0, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.LedgerItemKey, _ float64, payload json.RawMessage) (entities.LedgerItem, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload forwarded: %s", payload)
				}
				return entities.LedgerItem{Key: key, TotalAmount: 50, AmountPaid: 50, Status: entities.PayableStatusPago}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/apply", bytes.NewBufferString(`{"item_origin":"service_payment","item_id":"p-1","amount_to_apply":50,"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHandler_SettleItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/settle", h.SettleItem)

		key := entities.LedgerItemKey{Origin: entities.OriginExpense, ID: "ghost"}
		uc.EXPECT().SettleItem(gomock.Any(), key).Return(entities.LedgerItem{}, usecase.ErrLedgerItemNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/settle", bytes.NewBufferString(`{"item_origin":"expense","item_id":"ghost"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/settle", h.SettleItem)

		key := entities.LedgerItemKey{Origin: entities.OriginExpense, ID: "e-1"}
		uc.EXPECT().SettleItem(gomock.Any(), key).Return(entities.LedgerItem{
			Key: key, TotalAmount: 300, AmountPaid: 300, Status: entities.PayableStatusPago,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/settle", bytes.NewBufferString(`{"item_origin":"expense","item_id":"e-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != string(entities.PayableStatusPago) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidAmount, http.StatusBadRequest},
		{usecase.ErrUnknownOrigin, http.StatusBadRequest},
		{usecase.ErrLedgerItemNotFound, http.StatusNotFound},
		{usecase.ErrOverpaymentRejected, http.StatusUnprocessableEntity},
		{usecase.ErrGatewayRejected, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
