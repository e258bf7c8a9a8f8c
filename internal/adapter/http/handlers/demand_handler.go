package handlers

import (
	"net/http"

	request "casamenteiro/internal/adapter/http/dto/request"
	response "casamenteiro/internal/adapter/http/dto/response"
	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DemandHandler handles HTTP requests for demands and demand items.
type DemandHandler struct {
	usecase usecase.IDemandUseCase
}

func NewDemandHandler(uc usecase.IDemandUseCase) *DemandHandler {
	return &DemandHandler{usecase: uc}
}

func (h *DemandHandler) CreateDemand(c *gin.Context) {
	var payload request.CreateDemandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	items := make([]usecase.DemandItemInput, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, demandItemInput(it))
	}

	demand, err := h.usecase.CreateDemand(c.Request.Context(), usecase.CreateDemandInput{
		CoupleID:         payload.CoupleID,
		Description:      payload.Description,
		TotalBudget:      payload.TotalBudget,
		DeliveryDeadline: payload.DeliveryDeadline,
		Observations:     payload.Observations,
		Items:            items,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDemand(demand))
}

func (h *DemandHandler) GetDemand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	demand, err := h.usecase.GetDemand(c.Request.Context(), id)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDemand(demand))
}

func (h *DemandHandler) ListDemands(c *gin.Context) {
	if term := c.Query("q"); term != "" {
		demands, err := h.usecase.SearchDemands(c.Request.Context(), term)
		if err != nil {
			appErr := mapDomainError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromDemands(demands))
		return
	}

	coupleID, ok := queryID(c, "couple_id")
	if !ok {
		return
	}
	demands, err := h.usecase.ListDemandsByCouple(c.Request.Context(), coupleID)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDemands(demands))
}

// ListVisibleDemands is the supplier-facing listing: active demands matching
// the supplier's active catalog categories.
func (h *DemandHandler) ListVisibleDemands(c *gin.Context) {
	supplierID, ok := queryID(c, "supplier_id")
	if !ok {
		return
	}
	demands, err := h.usecase.DemandsVisibleToSupplier(c.Request.Context(), supplierID, queryInt(c, "page"), queryInt(c, "size"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDemands(demands))
}

func (h *DemandHandler) TransitionDemand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.TransitionDemandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	demand, err := h.usecase.TransitionDemand(c.Request.Context(), id, entities.DemandStatus(payload.Status))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDemand(demand))
}

func (h *DemandHandler) DeleteDemand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.DeleteDemand(c.Request.Context(), id); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DemandHandler) GetDemandFulfillment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	percent, err := h.usecase.GetDemandFulfillment(c.Request.Context(), id)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DemandFulfillmentResponse{DemandID: id, FulfillmentPercent: percent})
}

func (h *DemandHandler) ListDemandItems(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.usecase.ListDemandItems(c.Request.Context(), id)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDemandItems(items))
}

func (h *DemandHandler) AddDemandItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.DemandItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.AddDemandItem(c.Request.Context(), id, demandItemInput(payload))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDemandItem(item))
}

func (h *DemandHandler) UpdateDemandItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	var payload request.DemandItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.UpdateDemandItem(c.Request.Context(), id, itemID, demandItemInput(payload))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDemandItem(item))
}

func (h *DemandHandler) RemoveDemandItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	if err := h.usecase.RemoveDemandItem(c.Request.Context(), id, itemID); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func demandItemInput(payload request.DemandItemRequest) usecase.DemandItemInput {
	return usecase.DemandItemInput{
		SupplyType:   entities.SupplyType(payload.SupplyType),
		CategoryID:   payload.CategoryID,
		Description:  payload.Description,
		Quantity:     payload.Quantity,
		MaxPrice:     payload.MaxPrice,
		Observations: payload.Observations,
	}
}
