// Package validation builds the validator shared by the HTTP binder and the
// document store boundary, with the hub's custom tags registered.
package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"hive/internal/domain/entity"
	"hive/internal/errors"

	"github.com/go-playground/validator/v10"
)

var hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// New returns a validator with the skill_level, weekday, hhmm and tokens tags.
// tokens requires at least one non-blank entry in a comma separated list.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	mustRegister(v, "skill_level", func(fl validator.FieldLevel) bool {
		return slices.Contains(entity.SkillLevels, fl.Field().String())
	})
	mustRegister(v, "weekday", func(fl validator.FieldLevel) bool {
		return slices.Contains(entity.Weekdays, fl.Field().String())
	})
	mustRegister(v, "hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "tokens", func(fl validator.FieldLevel) bool {
		return slices.ContainsFunc(strings.Split(fl.Field().String(), ","), func(token string) bool {
			return strings.TrimSpace(token) != ""
		})
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Describe flattens validator errors into "field: tag" pairs for error details.
// Other errors are returned as their message.
func Describe(err error) string {
	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}

	return strings.Join(parts, "; ")
}
