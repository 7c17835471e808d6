package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	phoneNumberRegex = regexp.MustCompile(`^\d{9,15}$`)
	peselRegex       = regexp.MustCompile(`^\d{11}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("pesel", validatePesel)
	validate.RegisterValidation("role_type", validateRoleType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

func validatePesel(fl validator.FieldLevel) bool {
	return peselRegex.MatchString(fl.Field().String())
}

func validateRoleType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "patient" || value == "doctor"
}
