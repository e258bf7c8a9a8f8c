package handlers

import (
	"net/http"

	request "casamenteiro/internal/adapter/http/dto/request"
	response "casamenteiro/internal/adapter/http/dto/response"
	"casamenteiro/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CoupleHandler handles HTTP requests for couples.
type CoupleHandler struct {
	usecase usecase.ICoupleUseCase
}

func NewCoupleHandler(uc usecase.ICoupleUseCase) *CoupleHandler {
	return &CoupleHandler{usecase: uc}
}

func (h *CoupleHandler) CreateCouple(c *gin.Context) {
	var payload request.CreateCoupleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	couple, err := h.usecase.CreateCouple(c.Request.Context(), usecase.CreateCoupleInput{
		EngagedAID:   payload.EngagedAID,
		EngagedBID:   payload.EngagedBID,
		CeremonyDate: payload.CeremonyDate,
		CeremonyCity: payload.CeremonyCity,
		GuestCount:   payload.GuestCount,
		BudgetBand:   payload.BudgetBand,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCouple(couple))
}

func (h *CoupleHandler) UpdateCouple(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateCoupleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	couple, err := h.usecase.UpdateCouple(c.Request.Context(), id, usecase.UpdateCoupleInput{
		CeremonyDate: payload.CeremonyDate,
		CeremonyCity: payload.CeremonyCity,
		GuestCount:   payload.GuestCount,
		BudgetBand:   payload.BudgetBand,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCouple(couple))
}

func (h *CoupleHandler) GetCouple(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	couple, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCouple(couple))
}

func (h *CoupleHandler) GetCoupleByMember(c *gin.Context) {
	personID, ok := pathID(c, "person_id")
	if !ok {
		return
	}
	couple, err := h.usecase.GetByMember(c.Request.Context(), personID)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCouple(couple))
}

func (h *CoupleHandler) DeleteCouple(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.DeleteCouple(c.Request.Context(), id); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
