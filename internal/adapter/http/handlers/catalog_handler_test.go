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
	"casamenteiro/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_Categories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create duplicate maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/categories", h.CreateCategory)

		uc.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).
			Return(entities.Category{}, domainerr.Constraint(domainerr.ReasonCategoryNameTaken, "already exists"))

		req := httptest.NewRequest(http.MethodPost, "/v1/categories", bytes.NewBufferString(`{"name":"Buffet","supply_type":"SERVICO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/categories", h.CreateCategory)

		uc.EXPECT().CreateCategory(gomock.Any(), usecase.CreateCategoryInput{
			Name: "Buffet", SupplyType: entities.SupplyTypeService,
		}).Return(entities.Category{ID: 4, Name: "Buffet", SupplyType: entities.SupplyTypeService, Active: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/categories", bytes.NewBufferString(`{"name":"Buffet","supply_type":"SERVICO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != float64(4) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("deactivate in-use maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PATCH("/v1/categories/:id/deactivate", h.DeactivateCategory)

		uc.EXPECT().DeactivateCategory(gomock.Any(), uint(4)).
			Return(entities.Category{}, domainerr.Constraint(domainerr.ReasonCategoryInUse, "category is referenced"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/categories/4/deactivate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("list passes filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/categories", h.ListCategories)

		uc.EXPECT().ListCategories(gomock.Any(), gomock.Any(), 1, 50).DoAndReturn(
			func(_ interface{}, filter interfaces.CategoryFilter, _, _ int) ([]entities.Category, error) {
				if filter.SupplyType == nil || *filter.SupplyType != entities.SupplyTypeService {
					t.Fatalf("unexpected filter: %+v", filter)
				}
				return []entities.Category{}, nil
			},
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/categories?supply_type=SERVICO&page=1&size=50", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_CatalogItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create forwards decimal price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/catalog-items", h.CreateCatalogItem)

		uc.EXPECT().CreateCatalogItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.CatalogItemInput) (entities.CatalogItem, error) {
				if !in.UnitPrice.Equal(decimal.RequireFromString("1500.00")) {
					t.Fatalf("unexpected price: %s", in.UnitPrice)
				}
				return entities.CatalogItem{ID: 11, SupplierID: in.SupplierID, UnitPrice: in.UnitPrice, Active: true}, nil
			},
		)

		payload := `{"supplier_id":7,"supply_type":"SERVICO","category_id":4,"name":"Buffet completo","unit_price":"1500.00"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/catalog-items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("search branch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog-items", h.ListCatalogItems)

		uc.EXPECT().SearchCatalogItems(gomock.Any(), "buffet").Return([]entities.CatalogItem{{ID: 11}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog-items?q=buffet", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog-items/by-supplier/:supplier_id", h.ListCatalogItemsBySupplier)

		uc.EXPECT().ListCatalogItemsBySupplier(gomock.Any(), uint(7)).
			Return([]entities.CatalogItem{{ID: 11, SupplierID: 7}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog-items/by-supplier/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update not a supplier maps to forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/catalog-items/:id", h.UpdateCatalogItem)

		uc.EXPECT().UpdateCatalogItem(gomock.Any(), uint(11), gomock.Any()).
			Return(entities.CatalogItem{}, domainerr.Authorization(domainerr.ReasonNotASupplier, "only suppliers may own catalog items"))

		payload := `{"supply_type":"SERVICO","category_id":4,"name":"Buffet","unit_price":"100"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/catalog-items/11", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
