package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"casamenteiro/internal/adapter/http/handlers/mocks"
	"casamenteiro/internal/domain/domainerr"
	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDemandHandler_CreateDemand(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", h.CreateDemand)

		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", h.CreateDemand)

		uc.EXPECT().CreateDemand(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.CreateDemandInput) (entities.Demand, error) {
				if in.CoupleID != 1 || len(in.Items) != 1 || in.Items[0].SupplyType != entities.SupplyTypeService {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Demand{ID: 30, CoupleID: 1, Status: entities.DemandStatusActive}, nil
			},
		)

		payload := `{"couple_id":1,"description":"Casamento","items":[{"supply_type":"SERVICO","category_id":4,"description":"Buffet","quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestDemandHandler_Listings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("search by term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.GET("/v1/demands", h.ListDemands)

		uc.EXPECT().SearchDemands(gomock.Any(), "buffet").Return([]entities.Demand{{ID: 30}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands?q=buffet", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list requires couple id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.GET("/v1/demands", h.ListDemands)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("visible demands for supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.GET("/v1/demands/visible", h.ListVisibleDemands)

		uc.EXPECT().DemandsVisibleToSupplier(gomock.Any(), uint(7), 1, 20).
			Return([]entities.Demand{{ID: 30, Status: entities.DemandStatusActive}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands/visible?supplier_id=7&page=1&size=20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDemandHandler_TransitionDemand(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("illegal transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.PATCH("/v1/demands/:id/status", h.TransitionDemand)

		uc.EXPECT().TransitionDemand(gomock.Any(), uint(30), entities.DemandStatusFinished).
			Return(entities.Demand{}, domainerr.IllegalTransition("demand cannot move from CANCELADA to FINALIZADA"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/demands/30/status", bytes.NewBufferString(`{"status":"FINALIZADA"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.PATCH("/v1/demands/:id/status", h.TransitionDemand)

		uc.EXPECT().TransitionDemand(gomock.Any(), uint(30), entities.DemandStatusCancelled).
			Return(entities.Demand{ID: 30, Status: entities.DemandStatusCancelled}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/demands/30/status", bytes.NewBufferString(`{"status":"CANCELADA"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "CANCELADA" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestDemandHandler_GetDemandFulfillment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.GET("/v1/demands/:id/fulfillment", h.GetDemandFulfillment)

		uc.EXPECT().GetDemandFulfillment(gomock.Any(), uint(30)).
			Return(decimal.RequireFromString("33.33"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands/30/fulfillment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["fulfillment_percent"] != "33.33" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestDemandHandler_Items(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add item to inactive demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands/:id/items", h.AddDemandItem)

		uc.EXPECT().AddDemandItem(gomock.Any(), uint(30), gomock.Any()).
			Return(entities.DemandItem{}, domainerr.IllegalState(domainerr.ReasonDemandNotActive, "demand is not active"))

		payload := `{"supply_type":"SERVICO","category_id":4,"description":"Som","quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/v1/demands/30/items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("remove last item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.DELETE("/v1/demands/:id/items/:item_id", h.RemoveDemandItem)

		uc.EXPECT().RemoveDemandItem(gomock.Any(), uint(30), uint(50)).
			Return(domainerr.ValidationReason(domainerr.ReasonNoItems, "a demand cannot be left without items"))

		req := httptest.NewRequest(http.MethodDelete, "/v1/demands/30/items/50", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
