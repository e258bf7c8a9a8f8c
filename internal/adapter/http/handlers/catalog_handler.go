package handlers

import (
	"net/http"
	"strconv"

	request "casamenteiro/internal/adapter/http/dto/request"
	response "casamenteiro/internal/adapter/http/dto/response"
	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase"
	"casamenteiro/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for categories and catalog items.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var payload request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	category, err := h.usecase.CreateCategory(c.Request.Context(), usecase.CreateCategoryInput{
		Name:        payload.Name,
		SupplyType:  entities.SupplyType(payload.SupplyType),
		Description: payload.Description,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCategory(category))
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	category, err := h.usecase.UpdateCategory(c.Request.Context(), id, payload.Name, payload.Description)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategory(category))
}

func (h *CatalogHandler) DeactivateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.usecase.DeactivateCategory(c.Request.Context(), id)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategory(category))
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.usecase.GetCategory(c.Request.Context(), id)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategory(category))
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var filter interfaces.CategoryFilter
	if raw := c.Query("supply_type"); raw != "" {
		st := entities.SupplyType(raw)
		filter.SupplyType = &st
	}
	if raw := c.Query("active"); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	categories, err := h.usecase.ListCategories(c.Request.Context(), filter, queryInt(c, "page"), queryInt(c, "size"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(categories))
}

func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	var payload request.CatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.CreateCatalogItem(c.Request.Context(), catalogItemInput(payload))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogItem(item))
}

func (h *CatalogHandler) UpdateCatalogItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.CatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.UpdateCatalogItem(c.Request.Context(), id, catalogItemInput(payload))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

func (h *CatalogHandler) DeactivateCatalogItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := h.usecase.DeactivateCatalogItem(c.Request.Context(), id)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := h.usecase.GetCatalogItem(c.Request.Context(), id)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

func (h *CatalogHandler) ListCatalogItems(c *gin.Context) {
	if term := c.Query("q"); term != "" {
		items, err := h.usecase.SearchCatalogItems(c.Request.Context(), term)
		if err != nil {
			appErr := mapDomainError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromCatalogItems(items))
		return
	}

	var filter interfaces.CatalogItemFilter
	if raw := c.Query("supply_type"); raw != "" {
		st := entities.SupplyType(raw)
		filter.SupplyType = &st
	}
	if raw := c.Query("category_id"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			id := uint(v)
			filter.CategoryID = &id
		}
	}
	if raw := c.Query("active"); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	items, err := h.usecase.ListCatalogItems(c.Request.Context(), filter, queryInt(c, "page"), queryInt(c, "size"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

func (h *CatalogHandler) ListCatalogItemsBySupplier(c *gin.Context) {
	supplierID, ok := pathID(c, "supplier_id")
	if !ok {
		return
	}
	items, err := h.usecase.ListCatalogItemsBySupplier(c.Request.Context(), supplierID)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

func catalogItemInput(payload request.CatalogItemRequest) usecase.CatalogItemInput {
	return usecase.CatalogItemInput{
		SupplierID:   payload.SupplierID,
		SupplyType:   entities.SupplyType(payload.SupplyType),
		CategoryID:   payload.CategoryID,
		Name:         payload.Name,
		Description:  payload.Description,
		UnitPrice:    payload.UnitPrice,
		Observations: payload.Observations,
	}
}
