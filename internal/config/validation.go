package config

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// ValidateRequired checks if a required string field is not empty
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: "is required",
		}
	}
	return nil
}

// ValidateOneOf checks if a value is in a list of allowed values
func ValidateOneOf(field, value string, allowed []string) error {
	for _, allowedValue := range allowed {
		if value == allowedValue {
			return nil
		}
	}
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// validateWith runs one of apimachinery's IsXxx validators and folds its
// messages into a single ValidationError.
func validateWith(field, value string, check func(string) []string) error {
	if msgs := check(value); len(msgs) > 0 {
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: strings.Join(msgs, ", "),
		}
	}
	return nil
}

// Validate checks every field of cfg and returns all problems at once.
func Validate(cfg SyncConfig) error {
	var errs ValidationErrors

	appendErr := func(err error) {
		if err == nil {
			return
		}
		if ve, ok := err.(ValidationError); ok {
			errs = append(errs, ve)
			return
		}
		errs.Add("", err.Error())
	}

	if err := ValidateRequired("configNamespace", cfg.ConfigNamespace); err != nil {
		appendErr(err)
	} else {
		appendErr(validateWith("configNamespace", cfg.ConfigNamespace, validation.IsDNS1123Label))
	}

	if err := ValidateRequired("configName", cfg.ConfigName); err != nil {
		appendErr(err)
	} else {
		appendErr(validateWith("configName", cfg.ConfigName, validation.IsDNS1123Subdomain))
	}

	if err := ValidateRequired("configDataKey", cfg.ConfigDataKey); err != nil {
		appendErr(err)
	} else {
		appendErr(validateWith("configDataKey", cfg.ConfigDataKey, validation.IsConfigMapKey))
	}

	if err := ValidateRequired("serviceAccountName", cfg.ServiceAccountName); err != nil {
		appendErr(err)
	} else {
		appendErr(validateWith("serviceAccountName", cfg.ServiceAccountName, validation.IsDNS1123Subdomain))
	}

	appendErr(ValidateOneOf("logFormat", cfg.LogFormat, []string{"text", "json"}))

	if errs.HasErrors() {
		return errs
	}
	return nil
}
