package jobfile

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"pouch-cost/core/types"
	"pouch-cost/internal/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the job rules registered
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("pouch_type", validatePouchType)

		// Use JSON tag names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

func validatePouchType(fl validator.FieldLevel) bool {
	return types.PouchType(fl.Field().String()).Valid()
}

// Validate checks a spec against the job rules. Failures come back as a
// VALIDATION_ERROR whose context carries one message per field.
func Validate(s *Spec) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Internal("validate job", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fieldMessage(fe)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	msgs := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if msg := fields[name]; !seen[msg] {
			seen[msg] = true
			msgs = append(msgs, msg)
		}
	}

	return errors.Validation(strings.Join(msgs, "; "), nil).WithFields(fields)
}

// fieldPath drops the struct name: "Spec.film_structure.layers[0].material"
// becomes "film_structure.layers[0].material"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "pouch_type":
		return fmt.Sprintf("%s must be one of: %s", field, pouchTypeList())
	case "required_without":
		return "one of quantity_kg or quantity_pieces is required"
	case "excluded_with":
		return "quantity_kg and quantity_pieces are mutually exclusive"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func pouchTypeList() string {
	all := types.PouchTypes()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = string(p)
	}
	return strings.Join(names, " ")
}
