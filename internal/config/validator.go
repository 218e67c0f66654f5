package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	panelerrors "github.com/alexisbeaulieu97/gridpanel/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexRGBPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("hexrgb", func(fl validator.FieldLevel) bool {
			return hexRGBPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return panelerrors.NewValidationError(field, msg, err)
	}

	return panelerrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct name from the namespace so the path
// reads like the YAML document ("frames[1].name").
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func distinct(values []int) (int, bool) {
	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v, false
		}
		seen[v] = struct{}{}
	}
	return 0, true
}
