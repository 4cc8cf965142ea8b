package dto

import (
	"fmt"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain enum validations used in binding tags
// to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	rules := map[string]validator.Func{
		"activity_category": func(fl validator.FieldLevel) bool {
			return domain.ActivityCategory(fl.Field().String()).IsValid()
		},
		"expense_category": func(fl validator.FieldLevel) bool {
			return domain.ExpenseCategory(fl.Field().String()).IsValid()
		},
		"split_type": func(fl validator.FieldLevel) bool {
			return domain.SplitType(fl.Field().String()).IsValid()
		},
		"trip_role": func(fl validator.FieldLevel) bool {
			return domain.TripRole(fl.Field().String()).IsValid()
		},
		"trip_status": func(fl validator.FieldLevel) bool {
			return domain.TripStatus(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}
	return nil
}
