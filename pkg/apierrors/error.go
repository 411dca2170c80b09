package apierrors

import (
	"fmt"

	"github.com/dephea/bitrix-task/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// FieldError describes one rejected input value.
type FieldError struct {
	Location string `json:"location"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"msg"`
}

// Error implements the error interface for FieldError.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Location, e.Field, e.Message)
}

// CreateFieldError builds a FieldError with a translated message.
// The field name is always available to the template as .Field.
func CreateFieldError(location, field, msgKey, lang string, data map[string]any) FieldError {
	templateData := map[string]any{"Field": field}
	for k, v := range data {
		templateData[k] = v
	}
	return FieldError{
		Location: location,
		Field:    field,
		Message:  GetTransErrorMsg(msgKey, lang, templateData),
	}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string, data map[string]any) string {
	if translator.Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	m.TemplateData = data
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
