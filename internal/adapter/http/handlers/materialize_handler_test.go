package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"presupuesto_svc/internal/adapter/http/handlers/mocks"
	"presupuesto_svc/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMaterializeHandler_Materialize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IMaterializerUseCase) *gin.Engine {
		h := NewMaterializeHandler(uc)
		r := gin.New()
		r.POST("/v1/baselines/:baseline_id/materialize", h.Materialize)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterializerUseCase(ctrl)
		r := build(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/baselines/bl-001/materialize", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body is a valid trigger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterializerUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().MaterializeByID(gomock.Any(), "bl-001", "", usecase.MaterializeOptions{}).
			Return(usecase.RunResult{BaselineID: "bl-001", ProjectID: "prj-9"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/baselines/bl-001/materialize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["baseline_id"] != "bl-001" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("query flags reach the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterializerUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().MaterializeByID(gomock.Any(), "bl-001", "", usecase.MaterializeOptions{DryRun: true, ForceRewriteZeros: true}).
			Return(usecase.RunResult{BaselineID: "bl-001"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/baselines/bl-001/materialize?dry_run=true&force_rewrite_zeros=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("body project id forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterializerUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().MaterializeByID(gomock.Any(), "bl-001", "prj-9", usecase.MaterializeOptions{}).
			Return(usecase.RunResult{BaselineID: "bl-001", ProjectID: "prj-9"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/baselines/bl-001/materialize", bytes.NewBufferString(`{"project_id":"prj-9"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterializerUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().MaterializeByID(gomock.Any(), "bl-missing", "", gomock.Any()).
			Return(usecase.RunResult{}, usecase.ErrBaselineNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/baselines/bl-missing/materialize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("baseline without estimates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterializerUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().MaterializeByID(gomock.Any(), "bl-001", "", gomock.Any()).
			Return(usecase.RunResult{}, usecase.ErrBaselineWithoutEstimates)

		req := httptest.NewRequest(http.MethodPost, "/v1/baselines/bl-001/materialize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestMapMaterializeError(t *testing.T) {
	if got := mapMaterializeError(usecase.ErrInvalidBaselineID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapMaterializeError(usecase.ErrMissingProjectID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapMaterializeError(usecase.ErrBaselineIDAsProjectID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapMaterializeError(usecase.ErrBaselineNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapMaterializeError(usecase.ErrBaselineWithoutEstimates); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapMaterializeError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
