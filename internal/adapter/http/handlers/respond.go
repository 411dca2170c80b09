package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dephea/bitrix-task/internal/adapter/http/dto"
	"github.com/dephea/bitrix-task/internal/adapter/http/middleware"
	"github.com/dephea/bitrix-task/internal/adapter/http/validation"
	"github.com/dephea/bitrix-task/internal/core/domain"
	"github.com/dephea/bitrix-task/pkg/apierrors"
	"github.com/dephea/bitrix-task/pkg/envelope"
	"github.com/dephea/bitrix-task/pkg/jsonobject"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope.Success(data))
}

func respondValidation(c *gin.Context, fieldErrs []apierrors.FieldError) {
	c.JSON(http.StatusBadRequest, envelope.Error(envelope.MessageValidationError, fieldErrs))
}

// respondFailure renders a service error. Whitelist rejections are client errors,
// anything else came from the provider call or its answer.
func respondFailure(c *gin.Context, operation string, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		respondValidation(c, validation.DomainFieldErrors(validationErr, middleware.GetLang(c)))
		return
	}

	_ = c.Error(err)
	zap.L().Error("bitrix request failed",
		zap.String("operation", operation),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, envelope.Error(envelope.MessageBitrixAPIError, diagnostic(err)))
}

// diagnostic prefers the provider's own JSON answer over our error text.
func diagnostic(err error) any {
	var remoteErr *domain.RemoteCallError
	if errors.As(err, &remoteErr) && json.Valid(remoteErr.Body) {
		return json.RawMessage(remoteErr.Body)
	}
	return err.Error()
}

// bindTaskURI validates the :id path parameter.
func bindTaskURI(c *gin.Context) (string, []apierrors.FieldError) {
	var uri dto.TaskURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return "", validation.FieldErrors(err, apierrors.LocationParams, middleware.GetLang(c))
	}
	return uri.ID, nil
}

// bindBody validates the body against req and also keeps it as an ordered object
// so the provider mapper sees exactly the keys the client sent.
func bindBody(c *gin.Context, req any) (*jsonobject.Object, []apierrors.FieldError) {
	lang := middleware.GetLang(c)

	data, err := c.GetRawData()
	if err != nil {
		return nil, validation.FieldErrors(err, apierrors.LocationBody, lang)
	}
	if err := binding.JSON.BindBody(data, req); err != nil {
		return nil, validation.FieldErrors(err, apierrors.LocationBody, lang)
	}

	input, err := jsonobject.Parse(data)
	if err != nil {
		return nil, validation.FieldErrors(err, apierrors.LocationBody, lang)
	}
	return input, nil
}

// NotFound answers unknown routes with the error envelope.
func NotFound(c *gin.Context) {
	message := apierrors.GetTransErrorMsg(apierrors.MsgRouteNotFound, middleware.GetLang(c), nil)
	c.JSON(http.StatusNotFound, envelope.Error(envelope.MessageNotFound, message))
}
