package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var flowAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{16}$`)

// IsValidAddress reports whether address is a 0x-prefixed 8 byte Flow address
func IsValidAddress(address string) bool {
	return flowAddressRe.MatchString(address)
}

// New returns a validator with the flowaddr tag registered
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("flowaddr", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	return v
}
