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
	msgProviderCreated = "Provider created successfully"
	msgProviderUpdated = "Provider updated successfully"
	msgProviderDeleted = "Provider has been deleted successfully"
	msgNoProviders     = "No provider added yet"
)

// providerHandler handles HTTP requests related to providers.
type providerHandler struct {
	responder
	providerService portssvc.ProviderSvcFacade
}

func newProviderHandler(ps portssvc.ProviderSvcFacade, r responder) *providerHandler {
	return &providerHandler{responder: r, providerService: ps}
}

// registerProviderRoutes registers routes related to providers.
func registerProviderRoutes(rg gin.IRouter, providerService portssvc.ProviderSvcFacade, r responder) {
	h := newProviderHandler(providerService, r)

	providers := rg.Group("/providers")
	{
		providers.GET("/", h.listProviders)
		providers.POST("/", h.createProvider)
		providers.GET("/:provider_no/", h.getProvider)
		providers.PATCH("/:provider_no/", h.updateProvider)
		providers.DELETE("/:provider_no/", h.deleteProvider)
	}
}

// listProviders godoc
// @Summary List providers
// @Description Lists all providers that have not been deleted, newest first
// @Tags providers
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]dto.ProviderResponse}
// @Failure 400 {object} dto.FailureResponse "No provider added yet"
// @Router /providers/ [get]
func (h *providerHandler) listProviders(c *gin.Context) {
	providers, err := h.providerService.ListProviders(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if len(providers) == 0 {
		h.fail(c, apperrors.NewNotFoundError(msgNoProviders))
		return
	}
	h.success(c, http.StatusOK, dto.ToListProviderResponse(providers))
}

// createProvider godoc
// @Summary Create a provider
// @Description Creates a provider under the next provider number ("0001", "0002", ...)
// @Tags providers
// @Accept json
// @Produce json
// @Param provider body dto.CreateProviderRequest true "Provider details"
// @Success 201 {object} dto.SuccessResponse{data=string}
// @Failure 400 {object} dto.FailureResponse
// @Router /providers/ [post]
func (h *providerHandler) createProvider(c *gin.Context) {
	var req dto.CreateProviderRequest
	if err := bindBody(c, &req, dto.ProviderValidationMessages); err != nil {
		h.fail(c, err)
		return
	}

	provider, err := h.providerService.CreateProvider(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Provider created",
		slog.String("provider_no", provider.ProviderNo))
	c.Header("Location", "/providers/"+provider.ProviderNo+"/")
	h.success(c, http.StatusCreated, msgProviderCreated)
}

// getProvider godoc
// @Summary Get a provider
// @Tags providers
// @Produce json
// @Param provider_no path string true "Provider number" example(0001)
// @Success 200 {object} dto.SuccessResponse{data=dto.ProviderResponse}
// @Failure 400 {object} dto.FailureResponse "Invalid provider id"
// @Router /providers/{provider_no}/ [get]
func (h *providerHandler) getProvider(c *gin.Context) {
	provider, err := h.providerService.GetProviderByNo(c.Request.Context(), c.Param("provider_no"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, http.StatusOK, dto.ToProviderResponse(provider))
}

// updateProvider godoc
// @Summary Update a provider
// @Description Partially updates a provider. Only provider_name may be sent.
// @Tags providers
// @Accept json
// @Produce json
// @Param provider_no path string true "Provider number"
// @Param provider body dto.UpdateProviderRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse{data=string}
// @Failure 400 {object} dto.FailureResponse
// @Router /providers/{provider_no}/ [patch]
func (h *providerHandler) updateProvider(c *gin.Context) {
	providerNo := c.Param("provider_no")

	// Unknown providers are reported before the body is looked at.
	if _, err := h.providerService.GetProviderByNo(c.Request.Context(), providerNo); err != nil {
		h.fail(c, err)
		return
	}

	var req dto.UpdateProviderRequest
	if err := bindPatch(c, dto.ProviderPatchFields, &req, dto.ProviderValidationMessages); err != nil {
		h.fail(c, err)
		return
	}

	if _, err := h.providerService.UpdateProvider(c.Request.Context(), providerNo, req); err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, http.StatusOK, msgProviderUpdated)
}

// deleteProvider godoc
// @Summary Delete a provider
// @Description Soft-deletes a provider. Its articles are left untouched.
// @Tags providers
// @Produce json
// @Param provider_no path string true "Provider number"
// @Success 200 {object} dto.SuccessResponse{data=string}
// @Failure 400 {object} dto.FailureResponse "Invalid provider id"
// @Router /providers/{provider_no}/ [delete]
func (h *providerHandler) deleteProvider(c *gin.Context) {
	if err := h.providerService.DeleteProvider(c.Request.Context(), c.Param("provider_no")); err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, http.StatusOK, msgProviderDeleted)
}
