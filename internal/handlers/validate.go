// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"eventdeck/internal/apperr"
)

// validate is the shared validator instance for request payload structs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkStruct runs struct-tag validation and converts the first failure
// into a validation error naming the offending field.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			return apperr.Validation("%s is required", field)
		case "email":
			return apperr.Validation("%s must be a valid email address", field)
		case "min":
			return apperr.Validation("%s must be at least %s characters", field, fe.Param())
		case "max":
			return apperr.Validation("%s must be at most %s characters", field, fe.Param())
		case "oneof":
			return apperr.Validation("%s must be one of: %s", field, fe.Param())
		default:
			return apperr.Validation("%s is invalid", field)
		}
	}
	return apperr.Validation("invalid request payload")
}
