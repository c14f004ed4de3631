package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"construtora_xpto/internal/adapter/http/dto/request"
	"construtora_xpto/internal/adapter/http/handlers/mocks"
	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRecordRouter(t *testing.T) (*gin.Engine, *mocks.MockIRecordUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRecordUseCase(ctrl)
	h := NewRecordHandler(uc)

	r := gin.New()
	r.POST("/v1/projects", h.CreateProject)
	r.POST("/v1/projects/:project_id/services", h.CreateService)
	r.POST("/v1/projects/:project_id/expenses", h.CreateExpense)
	r.POST("/v1/projects/:project_id/stages", h.CreateStage)
	r.POST("/v1/services/:service_id/payments", h.CreateServicePayment)
	r.PATCH("/v1/expenses/:expense_id/release", h.ReleaseExpense)
	r.PATCH("/v1/expenses/:expense_id/priority", h.UpdateExpensePriority)
	r.PATCH("/v1/stages/:stage_id/progress", h.UpdateStageProgress)
	return r, uc
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func patchJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPatch, path, nil)
	} else {
		req = httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecordHandler_CreateProject(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newRecordRouter(t)
		if w := postJSON(r, "/v1/projects", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRecordRouter(t)
		uc.EXPECT().CreateProject(gomock.Any(), "Residencial Aurora", "Construtora XPTO").Return(entities.Project{ID: "obra-1", Name: "Residencial Aurora"}, nil)

		w := postJSON(r, "/v1/projects", `{"name":"Residencial Aurora","client":"Construtora XPTO"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "obra-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRecordHandler_CreateExpense(t *testing.T) {
	t.Run("bad date is 400", func(t *testing.T) {
		r, _ := newRecordRouter(t)
		w := postJSON(r, "/v1/projects/obra-1/expenses", `{"date":"soon","description":"Cimento","total_amount":300,"segment":"material"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ghost service link is 404", func(t *testing.T) {
		r, uc := newRecordRouter(t)
		uc.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(entities.GeneralExpense{}, usecase.ErrServiceNotFound)

		w := postJSON(r, "/v1/projects/obra-1/expenses", `{"date":"2026-03-15","description":"Cimento","total_amount":300,"segment":"material","service_id":"ghost"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success carries path project id", func(t *testing.T) {
		r, uc := newRecordRouter(t)
		uc.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreateExpenseCommand) (entities.GeneralExpense, error) {
				if cmd.ProjectID != "obra-1" {
					t.Fatalf("expected project id from path, got %q", cmd.ProjectID)
				}
				return entities.GeneralExpense{ID: "e-1", ProjectID: cmd.ProjectID, TotalAmount: cmd.TotalAmount, Status: entities.PayableStatusAPagar}, nil
			})

		w := postJSON(r, "/v1/projects/obra-1/expenses", `{"date":"2026-03-15","description":"Cimento","total_amount":300,"segment":"material"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != string(entities.PayableStatusAPagar) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRecordHandler_CreateServicePayment(t *testing.T) {
	r, uc := newRecordRouter(t)
	uc.EXPECT().RegisterServicePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, cmd usecase.CreateServicePaymentCommand) (entities.ServicePayment, error) {
			if cmd.ServiceID != "s-1" {
				t.Fatalf("expected service id from path, got %q", cmd.ServiceID)
			}
			return entities.ServicePayment{ID: "p-1", ServiceID: cmd.ServiceID, TotalAmount: cmd.TotalAmount, Status: entities.PayableStatusAPagar}, nil
		})

	w := postJSON(r, "/v1/services/s-1/payments", `{"date":"2026-03-15","total_amount":4300,"segment":"mao_de_obra"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRecordHandler_ReleaseExpense(t *testing.T) {
	t.Run("already paid is conflict", func(t *testing.T) {
		r, uc := newRecordRouter(t)
		uc.EXPECT().ReleaseExpense(gomock.Any(), "e-1").Return(entities.GeneralExpense{}, usecase.ErrInvalidStatusChange)

		if w := patchJSON(r, "/v1/expenses/e-1/release", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRecordRouter(t)
		uc.EXPECT().ReleaseExpense(gomock.Any(), "e-1").Return(entities.GeneralExpense{ID: "e-1", Status: entities.PayableStatusLiberado}, nil)

		w := patchJSON(r, "/v1/expenses/e-1/release", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != string(entities.PayableStatusLiberado) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRecordHandler_UpdateExpensePriority(t *testing.T) {
	t.Run("missing priority rejected", func(t *testing.T) {
		r, _ := newRecordRouter(t)
		if w := patchJSON(r, "/v1/expenses/e-1/priority", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero priority accepted", func(t *testing.T) {
		r, uc := newRecordRouter(t)
		uc.EXPECT().UpdateExpensePriority(gomock.Any(), "e-1", 0).Return(entities.GeneralExpense{ID: "e-1", Priority: 0}, nil)

		if w := patchJSON(r, "/v1/expenses/e-1/priority", `{"priority":0}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestRecordHandler_UpdateStageProgress(t *testing.T) {
	r, uc := newRecordRouter(t)
	uc.EXPECT().UpdateStageProgress(gomock.Any(), "st-1", 75.0, 0.0).Return(entities.ScheduleStage{ID: "st-1", CompletionPct: 75}, nil)

	w := patchJSON(r, "/v1/stages/st-1/progress", `{"completion_pct":75}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestMapRecordError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidRecordInput, http.StatusBadRequest},
		{request.ErrInvalidDate, http.StatusBadRequest},
		{usecase.ErrProjectNotFound, http.StatusNotFound},
		{usecase.ErrServiceNotFound, http.StatusNotFound},
		{usecase.ErrExpenseNotFound, http.StatusNotFound},
		{usecase.ErrStageNotFound, http.StatusNotFound},
		{usecase.ErrInvalidStatusChange, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapRecordError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
