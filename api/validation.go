package api

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	bk "github.com/driveshare/car-rental-backend/booking"
)

// RegisterValidations installs the custom binding rules on gin's validator
// engine. Call once before building the router.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)

	if !ok {
		return nil
	}

	// expose Date to the validator as its underlying time.Time, so
	// `required` rejects an absent date (zero time) instead of passing it
	// through as year 1
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(bk.Date); ok {
			return d.Time
		}
		return nil
	}, bk.Date{})

	return v.RegisterValidation("bookingstatus", func(fl validator.FieldLevel) bool {
		return bk.Status(fl.Field().String()).Valid()
	})
}
