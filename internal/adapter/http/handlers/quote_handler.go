package handlers

import (
	"net/http"

	request "casamenteiro/internal/adapter/http/dto/request"
	response "casamenteiro/internal/adapter/http/dto/response"
	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for quotes and quote items.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	items := make([]usecase.QuoteItemInput, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, quoteItemInput(it))
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), usecase.CreateQuoteInput{
		DemandID:     payload.DemandID,
		SupplierID:   payload.SupplierID,
		Validity:     payload.Validity,
		Observations: payload.Observations,
		Items:        items,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	qw, err := h.usecase.GetQuoteWithItems(c.Request.Context(), id)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteWithItems(qw))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	ctx := c.Request.Context()

	switch {
	case c.Query("demand_id") != "":
		demandID, ok := queryID(c, "demand_id")
		if !ok {
			return
		}
		quotes, err := h.usecase.ListQuotesForDemand(ctx, demandID)
		h.writeQuoteList(c, quotes, err)
	case c.Query("supplier_id") != "":
		supplierID, ok := queryID(c, "supplier_id")
		if !ok {
			return
		}
		quotes, err := h.usecase.ListQuotesBySupplier(ctx, supplierID, queryInt(c, "page"), queryInt(c, "size"))
		h.writeQuoteList(c, quotes, err)
	case c.Query("couple_id") != "":
		coupleID, ok := queryID(c, "couple_id")
		if !ok {
			return
		}
		quotes, err := h.usecase.ListQuotesByCouple(ctx, coupleID)
		h.writeQuoteList(c, quotes, err)
	case c.Query("status") != "":
		status := entities.QuoteStatus(c.Query("status"))
		quotes, err := h.usecase.ListQuotesByStatus(ctx, status, queryInt(c, "page"), queryInt(c, "size"))
		h.writeQuoteList(c, quotes, err)
	default:
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
	}
}

func (h *QuoteHandler) writeQuoteList(c *gin.Context, quotes []entities.Quote, err error) {
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) AcceptQuoteItem(c *gin.Context) {
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	var payload request.QuoteItemDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.AcceptQuoteItem(c.Request.Context(), itemID, payload.ActorID); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) RejectQuoteItem(c *gin.Context) {
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	var payload request.QuoteItemDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.RejectQuoteItem(c.Request.Context(), itemID, payload.ActorID, payload.Reason); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) AddQuoteItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.QuoteItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.AddQuoteItem(c.Request.Context(), id, quoteItemInput(payload))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteItem(item))
}

func (h *QuoteHandler) UpdateQuoteItem(c *gin.Context) {
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	var payload request.QuoteItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.UpdateQuoteItem(c.Request.Context(), itemID, quoteItemInput(payload))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteItem(item))
}

func (h *QuoteHandler) RemoveQuoteItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	if err := h.usecase.RemoveQuoteItem(c.Request.Context(), id, itemID); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func quoteItemInput(payload request.QuoteItemRequest) usecase.QuoteItemInput {
	return usecase.QuoteItemInput{
		DemandItemID:  payload.DemandItemID,
		CatalogItemID: payload.CatalogItemID,
		Quantity:      payload.Quantity,
		UnitPrice:     payload.UnitPrice,
		Discount:      payload.Discount,
		Observations:  payload.Observations,
	}
}
