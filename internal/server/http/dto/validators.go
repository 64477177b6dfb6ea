package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// RegisterValidators adds the booking specific binding tags to v.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("selection_status", func(fl validator.FieldLevel) bool {
		return model.SelectionStatus(fl.Field().String()).Settable()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("plan_tier", func(fl validator.FieldLevel) bool {
		return model.PlanTier(fl.Field().String()).Valid()
	})
}
