package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(GetDefaultConfig()))
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := SyncConfig{
		ConfigNamespace:    "",
		ConfigName:         "UPPER",
		ConfigDataKey:      "bad key",
		ServiceAccountName: "default",
		LogFormat:          "xml",
	}

	err := Validate(cfg)
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		fields = append(fields, ve.Field)
	}
	assert.ElementsMatch(t, []string{"configNamespace", "configName", "configDataKey", "logFormat"}, fields)
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("configName", "is required")
	assert.Equal(t, "field 'configName': is required", errs.Error())

	errs.Add("logFormat", "must be one of: text, json", "xml")
	assert.Equal(t, "validation failed: field 'configName': is required; field 'logFormat': must be one of: text, json", errs.Error())
	assert.Equal(t, "xml", errs[1].Value)
}

func TestValidateOneOf(t *testing.T) {
	assert.NoError(t, ValidateOneOf("logFormat", "json", []string{"text", "json"}))
	assert.Error(t, ValidateOneOf("logFormat", "yaml", []string{"text", "json"}))
}
