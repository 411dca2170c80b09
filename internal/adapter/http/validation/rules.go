// Package validation registers the request rules used by the dto binding tags and turns
// binding failures into translated field errors.
package validation

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dephea/bitrix-task/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	TagISO8601    = "iso8601"
	TagPageOffset = "pageoffset"
	TagIntBetween = "intbetween"
)

var iso8601Layouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

var registerOnce sync.Once

// Register installs field naming and the custom rules on gin's validator. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			zap.L().Error("gin validator engine is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(fieldName)

		rules := map[string]validator.Func{
			TagISO8601:    isISO8601,
			TagPageOffset: isPageOffset,
			TagIntBetween: isIntBetween,
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				zap.L().Error("failed to register validation rule", zap.String("tag", tag), zap.Error(err))
			}
		}
	})
}

// fieldName reports fields by their wire name so errors match what the client sent.
func fieldName(field reflect.StructField) string {
	for _, key := range []string{"json", "form", "uri"} {
		name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// IsISO8601 accepts full timestamps with or without zone, minute precision and bare dates.
func IsISO8601(value string) bool {
	for _, layout := range iso8601Layouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func isISO8601(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return IsISO8601(fl.Field().String())
}

// isPageOffset accepts non-negative multiples of the provider page size.
func isPageOffset(fl validator.FieldLevel) bool {
	var offset int64
	switch fl.Field().Kind() {
	case reflect.String:
		parsed, err := strconv.ParseInt(fl.Field().String(), 10, 64)
		if err != nil {
			return false
		}
		offset = parsed
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		offset = fl.Field().Int()
	default:
		return false
	}
	return offset >= 0 && offset%domain.PageSize == 0
}

// isIntBetween checks an integer, or a decimal string, against an inclusive "min:max" param.
func isIntBetween(fl validator.FieldLevel) bool {
	lo, hi, ok := parseBounds(fl.Param())
	if !ok {
		return false
	}

	var value int64
	switch fl.Field().Kind() {
	case reflect.String:
		parsed, err := strconv.ParseInt(fl.Field().String(), 10, 64)
		if err != nil {
			return false
		}
		value = parsed
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value = fl.Field().Int()
	default:
		return false
	}
	return value >= lo && value <= hi
}

func parseBounds(param string) (int64, int64, bool) {
	loText, hiText, found := strings.Cut(param, ":")
	if !found {
		return 0, 0, false
	}
	lo, err := strconv.ParseInt(loText, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.ParseInt(hiText, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
