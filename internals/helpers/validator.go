// file: internals/helpers/validator.go
package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds a validator that reports fields by their json tag,
// so error messages match the wire names the client sent.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}
