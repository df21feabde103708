package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/price_listing_app/internal/apperrors"
	portssvc "github.com/SscSPs/price_listing_app/internal/core/ports/services"
	"github.com/SscSPs/price_listing_app/internal/dto"
	"github.com/SscSPs/price_listing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	msgCurrencyCreated = "Currency created successfully"
	msgCurrencyUpdated = "Currency updated successfully"
	msgCurrencyDeleted = "Currency deleted successfully"
	msgNoCurrencies    = "No currency added yet"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	responder
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade, r responder) *currencyHandler {
	return &currencyHandler{responder: r, currencyService: cs}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg gin.IRouter, currencyService portssvc.CurrencySvcFacade, r responder) {
	h := newCurrencyHandler(currencyService, r)

	currencies := rg.Group("/currency")
	{
		currencies.GET("/", h.listCurrencies)
		currencies.POST("/", h.createCurrency)
		currencies.GET("/:currency_id/", h.getCurrency)
		currencies.PATCH("/:currency_id/", h.updateCurrency)
		currencies.DELETE("/:currency_id/", h.deleteCurrency)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]dto.CurrencyResponse}
// @Failure 400 {object} dto.FailureResponse "No currency added yet"
// @Router /currency/ [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if len(currencies) == 0 {
		h.fail(c, apperrors.NewNotFoundError(msgNoCurrencies))
		return
	}
	h.success(c, http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// createCurrency godoc
// @Summary Create a currency
// @Description Adds a currency. The code is stored upper-case; names are unique ignoring case.
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.SuccessResponse{data=string}
// @Failure 400 {object} dto.FailureResponse "Currency with this data already exists"
// @Router /currency/ [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	var req dto.CreateCurrencyRequest
	if err := bindBody(c, &req, dto.CurrencyValidationMessages); err != nil {
		h.fail(c, err)
		return
	}

	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Currency created",
		slog.String("currency_id", currency.CurrencyID))
	c.Header("Location", "/currency/"+currency.CurrencyID+"/")
	h.success(c, http.StatusCreated, msgCurrencyCreated)
}

// getCurrency godoc
// @Summary Get a currency
// @Tags currencies
// @Produce json
// @Param currency_id path string true "Currency code, any case" example(USD)
// @Success 200 {object} dto.SuccessResponse{data=dto.CurrencyResponse}
// @Failure 400 {object} dto.FailureResponse "Invalid currency id"
// @Router /currency/{currency_id}/ [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), c.Param("currency_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, http.StatusOK, dto.ToCurrencyResponse(currency))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Partially updates a currency. Only currency_name may be sent.
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency_id path string true "Currency code"
// @Param currency body dto.UpdateCurrencyRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse{data=string}
// @Failure 400 {object} dto.FailureResponse
// @Router /currency/{currency_id}/ [patch]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	currencyID := c.Param("currency_id")

	if _, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID); err != nil {
		h.fail(c, err)
		return
	}

	var req dto.UpdateCurrencyRequest
	if err := bindPatch(c, dto.CurrencyPatchFields, &req, dto.CurrencyValidationMessages); err != nil {
		h.fail(c, err)
		return
	}

	if _, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyID, req); err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, http.StatusOK, msgCurrencyUpdated)
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Soft-deletes a currency. Articles using it are left untouched.
// @Tags currencies
// @Produce json
// @Param currency_id path string true "Currency code"
// @Success 200 {object} dto.SuccessResponse{data=string}
// @Failure 400 {object} dto.FailureResponse "Invalid currency id"
// @Router /currency/{currency_id}/ [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	if err := h.currencyService.DeleteCurrency(c.Request.Context(), c.Param("currency_id")); err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, http.StatusOK, msgCurrencyDeleted)
}
