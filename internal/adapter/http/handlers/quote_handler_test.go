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

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("open quote maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).
			Return(entities.Quote{}, domainerr.BusinessRule(domainerr.ReasonOpenQuoteExists, "supplier already has an open quote"))

		payload := `{"demand_id":30,"supplier_id":7,"items":[{"demand_item_id":50,"catalog_item_id":11,"quantity":1,"unit_price":"300.00"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
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
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.CreateQuoteInput) (entities.Quote, error) {
				if in.DemandID != 30 || len(in.Items) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.Items[0].UnitPrice.Equal(decimal.RequireFromString("300.00")) {
					t.Fatalf("unexpected unit price: %s", in.Items[0].UnitPrice)
				}
				return entities.Quote{ID: 81, DemandID: 30, SupplierID: 7, Status: entities.QuoteStatusPending}, nil
			},
		)

		payload := `{"demand_id":30,"supplier_id":7,"items":[{"demand_item_id":50,"catalog_item_id":11,"quantity":1,"unit_price":"300.00"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != float64(81) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no selector", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)

		uc.EXPECT().ListQuotesForDemand(gomock.Any(), uint(30)).
			Return([]entities.Quote{{ID: 81, DemandID: 30}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes?demand_id=30", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by supplier with pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)

		uc.EXPECT().ListQuotesBySupplier(gomock.Any(), uint(7), 2, 10).
			Return([]entities.Quote{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes?supplier_id=7&page=2&size=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)

		uc.EXPECT().ListQuotesByStatus(gomock.Any(), entities.QuoteStatusPending, 0, 0).
			Return([]entities.Quote{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes?status=PENDENTE", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Decisions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/items/:item_id/accept", h.AcceptQuoteItem)

		uc.EXPECT().AcceptQuoteItem(gomock.Any(), uint(60), uint(2)).Return(nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/items/60/accept", bytes.NewBufferString(`{"actor_id":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("accept already fulfilled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/items/:item_id/accept", h.AcceptQuoteItem)

		uc.EXPECT().AcceptQuoteItem(gomock.Any(), uint(60), uint(2)).
			Return(domainerr.BusinessRule(domainerr.ReasonDemandItemFulfilled, "another quote item was already accepted"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/items/60/accept", bytes.NewBufferString(`{"actor_id":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reject outsider maps to forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/items/:item_id/reject", h.RejectQuoteItem)

		uc.EXPECT().RejectQuoteItem(gomock.Any(), uint(60), uint(99), "caro").
			Return(domainerr.Authorization(domainerr.ReasonNotCoupleMember, "only the engaged couple can decide"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/items/60/reject", bytes.NewBufferString(`{"actor_id":99,"reason":"caro"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns quote with items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		uc.EXPECT().GetQuoteWithItems(gomock.Any(), uint(81)).Return(usecase.QuoteWithItems{
			Quote: entities.Quote{ID: 81, Status: entities.QuoteStatusPending},
			Items: []entities.QuoteItem{{ID: 60, QuoteID: 81, Quantity: 1, UnitPrice: decimal.RequireFromString("300.00"), Status: entities.QuoteItemStatusPending}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/81", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if _, ok := body["items"]; !ok {
			t.Fatalf("expected items in body: %s", w.Body.String())
		}
	})
}
