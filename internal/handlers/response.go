package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/SscSPs/price_listing_app/internal/apperrors"
	"github.com/SscSPs/price_listing_app/internal/dto"
	"github.com/SscSPs/price_listing_app/internal/middleware"
	"github.com/SscSPs/price_listing_app/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// responder writes the success and failure envelopes. With strictStatus
// unset every failure is answered with 400.
type responder struct {
	strictStatus bool
}

func (r responder) success(c *gin.Context, status int, data any) {
	c.JSON(status, dto.NewSuccess(data))
}

func (r responder) fail(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindInternal {
		logger.Error("Request failed", slog.String("error", err.Error()))
	} else {
		logger.Info("Request rejected", slog.String("kind", kind.String()), slog.String("error", err.Error()))
	}

	status := http.StatusBadRequest
	if r.strictStatus {
		status = kind.StatusCode()
	}
	c.JSON(status, dto.NewFailure(apperrors.PublicMessage(err)))
}

// bindBody binds a create payload into req with gin's JSON binding. An empty
// body counts as an empty object so missing fields are reported by name.
func bindBody(c *gin.Context, req any, msgs validation.Messages) error {
	body, err := c.GetRawData()
	if err != nil {
		return apperrors.NewValidationFailedError(dto.MsgInvalidRequestBody)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if err := binding.JSON.BindBody(body, req); err != nil {
		if validation.IsRuleFailure(err) {
			return apperrors.NewValidationFailedError(validation.Message(err, msgs))
		}
		return apperrors.NewValidationFailedError(dto.MsgInvalidRequestBody)
	}
	return nil
}

// bindPatch decodes a partial update, rejecting keys outside allowed.
func bindPatch(c *gin.Context, allowed dto.PatchFields, req any, msgs validation.Messages) error {
	body, err := c.GetRawData()
	if err != nil {
		return apperrors.NewValidationFailedError(dto.MsgInvalidRequestBody)
	}
	if err := dto.DecodePatch(body, allowed, req); err != nil {
		return err
	}
	return validate(req, msgs)
}

func validate(req any, msgs validation.Messages) error {
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return apperrors.NewValidationFailedError(validation.Message(err, msgs))
	}
	return nil
}
