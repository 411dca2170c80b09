package validation

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/dephea/bitrix-task/internal/core/domain"
	"github.com/dephea/bitrix-task/pkg/apierrors"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts a binding failure at the given location into translated field errors.
func FieldErrors(err error, location, lang string) []apierrors.FieldError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fieldErrs := make([]apierrors.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			msgKey, data := describeRule(fe)
			fieldErrs = append(fieldErrs, apierrors.CreateFieldError(location, fe.Field(), msgKey, lang, data))
		}
		return fieldErrs
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []apierrors.FieldError{
			apierrors.CreateFieldError(location, typeErr.Field, typeMessage(typeErr.Type), lang, nil),
		}
	}

	if location == apierrors.LocationBody {
		return []apierrors.FieldError{apierrors.CreateFieldError(location, "", apierrors.MsgInvalidJSONBody, lang, nil)}
	}
	return []apierrors.FieldError{apierrors.CreateFieldError(location, "", apierrors.MsgFieldInvalid, lang, nil)}
}

// DomainFieldErrors reports every field named by a whitelist or value rejection.
func DomainFieldErrors(err *domain.ValidationError, lang string) []apierrors.FieldError {
	msgKey := apierrors.MsgInvalidFieldValue
	if err.Kind == domain.ValidationUnexpectedField {
		msgKey = apierrors.MsgUnexpectedField
	}

	fieldErrs := make([]apierrors.FieldError, 0, len(err.Fields))
	for _, field := range err.Fields {
		fieldErrs = append(fieldErrs, apierrors.CreateFieldError(apierrors.LocationBody, field, msgKey, lang, nil))
	}
	return fieldErrs
}

func describeRule(fe validator.FieldError) (string, map[string]any) {
	switch fe.Tag() {
	case "required":
		return apierrors.MsgFieldRequired, nil
	case "number":
		return apierrors.MsgFieldNotInteger, nil
	case TagIntBetween:
		lo, hi, _ := parseBounds(fe.Param())
		return apierrors.MsgFieldOutOfRange, map[string]any{"Min": lo, "Max": hi}
	case TagISO8601:
		return apierrors.MsgFieldNotISO8601, nil
	case TagPageOffset:
		return apierrors.MsgOffsetNotMultiple, map[string]any{"PageSize": domain.PageSize}
	default:
		return apierrors.MsgFieldInvalid, nil
	}
}

func typeMessage(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return apierrors.MsgFieldInvalidType
	}
	switch t.Kind() {
	case reflect.String:
		return apierrors.MsgFieldNotString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return apierrors.MsgFieldNotInteger
	default:
		return apierrors.MsgFieldInvalidType
	}
}
