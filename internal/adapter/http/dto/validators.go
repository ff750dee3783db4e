package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"private-payroll-gateway/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Record ids are commitments, nonces, serials or content hashes; all are
// plain tokens with no whitespace or markup.
var recordIDRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("record_id", validateRecordID)
		_ = v.RegisterValidation("aleo_address", validateAleoAddress)
	}
}

// validateRecordID allows alphanumeric, underscore, dash, and dot.
func validateRecordID(fl validator.FieldLevel) bool {
	return recordIDRe.MatchString(fl.Field().String())
}

// validateAleoAddress accepts bech32-shaped account addresses.
func validateAleoAddress(fl validator.FieldLevel) bool {
	return domain.IsAddress(fl.Field().String())
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
