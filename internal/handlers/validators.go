package handlers

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var percentCap = decimal.NewFromInt(100)

// RegisterCustomValidators installs the binding validators the request DTOs
// rely on. Must run once before the router starts serving.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// decimal.Decimal is opaque to the validator; expose it as float64 so
	// numeric rules can see it.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// decimalpercent accepts values in [0, 100].
	_ = v.RegisterValidation("decimalpercent", func(fl validator.FieldLevel) bool {
		f, ok := fl.Field().Interface().(float64)
		if !ok {
			return false
		}
		d := decimal.NewFromFloat(f)
		return !d.IsNegative() && d.LessThanOrEqual(percentCap)
	})
}
