package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"vetclinic/internal/apperrors"
)

// Brazilian phone format: (XX) XXXXX-XXXX or (XX) XXXX-XXXX.
var brPhonePattern = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)

var registerOnce sync.Once

// RegisterValidators wires the custom field validators into gin's
// binding engine and makes validator report json field names. Safe to
// call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("br_phone", func(fl validator.FieldLevel) bool {
			return brPhonePattern.MatchString(fl.Field().String())
		})
	})
}

// TranslateBindingError converts the error returned by ShouldBindJSON
// into a ValidationError naming the offending field and rule.
func TranslateBindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		rule := fe.Tag()
		if fe.Param() != "" {
			rule = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		return apperrors.Validation(fe.Field(), rule)
	}

	var jerr *json.UnmarshalTypeError
	if errors.As(err, &jerr) {
		return apperrors.Validation(jerr.Field, "tipo inválido")
	}

	return apperrors.Validation("body", "JSON malformado")
}
