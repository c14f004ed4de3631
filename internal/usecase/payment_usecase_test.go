package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"construtora_xpto/internal/domain/entities"
	mock_interfaces "construtora_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func expenseKey(id string) entities.LedgerItemKey {
	return entities.LedgerItemKey{Origin: entities.OriginExpense, ID: id}
}

func TestPaymentUseCase_ApplyPayment(t *testing.T) {
	t.Run("invalid amounts", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		for _, amount := range []float64{0, -10, math.NaN(), math.Inf(1)} {
			if _, err := uc.ApplyPayment(context.Background(), expenseKey("e-1"), amount, nil); !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("amount %v: expected ErrInvalidAmount, got %v", amount, err)
			}
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		if _, err := uc.ApplyPayment(context.Background(), expenseKey("   "), 10, nil); !errors.Is(err, ErrLedgerItemNotFound) {
			t.Fatalf("expected ErrLedgerItemNotFound, got %v", err)
		}
	})

	t.Run("unknown origin", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		key := entities.LedgerItemKey{Origin: "invoice", ID: "x-1"}
		if _, err := uc.ApplyPayment(context.Background(), key, 10, nil); !errors.Is(err, ErrUnknownOrigin) {
			t.Fatalf("expected ErrUnknownOrigin, got %v", err)
		}
	})

	t.Run("expense not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		expenses := mock_interfaces.NewMockIGeneralExpenseRepository(ctrl)
		uc := NewPaymentUseCase(expenses, nil, nil)

		expenses.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.GeneralExpense{}, nil)

		if _, err := uc.ApplyPayment(context.Background(), expenseKey("e-1"), 10, nil); !errors.Is(err, ErrLedgerItemNotFound) {
			t.Fatalf("expected ErrLedgerItemNotFound, got %v", err)
		}
	})

	t.Run("overpayment rejected leaves paid unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		expenses := mock_interfaces.NewMockIGeneralExpenseRepository(ctrl)
		uc := NewPaymentUseCase(expenses, nil, nil)

		expenses.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 0}, nil)
		// No UpdatePaid expectation: the mutation must never happen.

		_, err := uc.ApplyPayment(context.Background(), expenseKey("e-1"), 500.02, nil)
		if !errors.Is(err, ErrOverpaymentRejected) {
			t.Fatalf("expected ErrOverpaymentRejected, got %v", err)
		}
	})

	t.Run("overpayment rejected exactly at the tolerance boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		expenses := mock_interfaces.NewMockIGeneralExpenseRepository(ctrl)
		uc := NewPaymentUseCase(expenses, nil, nil)

		// 500.01 sits exactly at outstanding+epsilon; it must not settle the
		// item with paid above total.
		expenses.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 0}, nil)

		_, err := uc.ApplyPayment(context.Background(), expenseKey("e-1"), 500.01, nil)
		if !errors.Is(err, ErrOverpaymentRejected) {
			t.Fatalf("expected ErrOverpaymentRejected, got %v", err)
		}
	})

	t.Run("full payment transitions to pago", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		expenses := mock_interfaces.NewMockIGeneralExpenseRepository(ctrl)
		uc := NewPaymentUseCase(expenses, nil, nil)

		expenses.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 0}, nil)
		expenses.EXPECT().UpdatePaid(gomock.Any(), "e-1", 500.0, entities.PayableStatusPago).Return(
			entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 500, Status: entities.PayableStatusPago}, nil)

		it, err := uc.ApplyPayment(context.Background(), expenseKey("e-1"), 500.00, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.Status != entities.PayableStatusPago || !it.Settled() {
			t.Fatalf("expected settled pago item, got %+v", it)
		}
	})

	t.Run("partial payment transitions to parcial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		expenses := mock_interfaces.NewMockIGeneralExpenseRepository(ctrl)
		uc := NewPaymentUseCase(expenses, nil, nil)

		expenses.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 100}, nil)
		expenses.EXPECT().UpdatePaid(gomock.Any(), "e-1", 300.0, entities.PayableStatusParcial).Return(
			entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 300, Status: entities.PayableStatusParcial}, nil)

		it, err := uc.ApplyPayment(context.Background(), expenseKey("e-1"), 200, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.Status != entities.PayableStatusParcial || it.Settled() {
			t.Fatalf("expected pending parcial item, got %+v", it)
		}
	})

	t.Run("routes service payment origin to its repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIServicePaymentRepository(ctrl)
		uc := NewPaymentUseCase(nil, payments, nil)

		payments.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.ServicePayment{ID: "p-1", ServiceID: "s-1", Date: day(1), TotalAmount: 1000, AmountPaid: 0}, nil)
		payments.EXPECT().UpdatePaid(gomock.Any(), "p-1", 400.0, entities.PayableStatusParcial).Return(
			entities.ServicePayment{ID: "p-1", ServiceID: "s-1", Date: day(1), TotalAmount: 1000, AmountPaid: 400, Status: entities.PayableStatusParcial}, nil)

		key := entities.LedgerItemKey{Origin: entities.OriginServicePayment, ID: "p-1"}
		it, err := uc.ApplyPayment(context.Background(), key, 400, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.Key.Origin != entities.OriginServicePayment || it.AmountPaid != 400 {
			t.Fatalf("unexpected item: %+v", it)
		}
	})

	t.Run("rounding tolerance accepts near-exact settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		expenses := mock_interfaces.NewMockIGeneralExpenseRepository(ctrl)
		uc := NewPaymentUseCase(expenses, nil, nil)

		expenses.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 0}, nil)
		expenses.EXPECT().UpdatePaid(gomock.Any(), "e-1", 500.005, entities.PayableStatusPago).Return(
			entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 500.005, Status: entities.PayableStatusPago}, nil)

		if _, err := uc.ApplyPayment(context.Background(), expenseKey("e-1"), 500.005, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway capture failure blocks the mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		expenses := mock_interfaces.NewMockIGeneralExpenseRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(expenses, nil, gateway)

		expenses.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.ApplyPayment(context.Background(), expenseKey("e-1"), 100, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrGatewayRejected) {
			t.Fatalf("expected ErrGatewayRejected, got %v", err)
		}
	})

	t.Run("gateway capture success applies the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		expenses := mock_interfaces.NewMockIGeneralExpenseRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(expenses, nil, gateway)

		expenses.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if m["transaction_amount"] != 100.0 {
					t.Fatalf("expected enriched transaction_amount, got %+v", m)
				}
				if m["external_reference"] != "expense/e-1" {
					t.Fatalf("expected ledger linkage, got %+v", m)
				}
				return "mp-1", "approved", payload, nil
			})
		expenses.EXPECT().UpdatePaid(gomock.Any(), "e-1", 100.0, entities.PayableStatusParcial).Return(
			entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 100, Status: entities.PayableStatusParcial}, nil)

		if _, err := uc.ApplyPayment(context.Background(), expenseKey("e-1"), 100, json.RawMessage(`{"payment_method_id":"pix"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_SettleItem(t *testing.T) {
	t.Run("settles the outstanding balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		expenses := mock_interfaces.NewMockIGeneralExpenseRepository(ctrl)
		uc := NewPaymentUseCase(expenses, nil, nil)

		expenses.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 200}, nil).Times(2)
		expenses.EXPECT().UpdatePaid(gomock.Any(), "e-1", 500.0, entities.PayableStatusPago).Return(
			entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 500, Status: entities.PayableStatusPago}, nil)

		it, err := uc.SettleItem(context.Background(), expenseKey("e-1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.Status != entities.PayableStatusPago {
			t.Fatalf("expected pago, got %+v", it)
		}
	})

	t.Run("already settled is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		expenses := mock_interfaces.NewMockIGeneralExpenseRepository(ctrl)
		uc := NewPaymentUseCase(expenses, nil, nil)

		expenses.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.GeneralExpense{ID: "e-1", Date: day(1), TotalAmount: 500, AmountPaid: 500, Status: entities.PayableStatusPago}, nil)

		it, err := uc.SettleItem(context.Background(), expenseKey("e-1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.AmountPaid != 500 {
			t.Fatalf("unexpected item: %+v", it)
		}
	})
}
