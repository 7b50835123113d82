package validator

import (
	"errors"
	"testing"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorInitialization(t *testing.T) {
	t.Run("should initialize validator instance", func(t *testing.T) {
		assert.NotNil(t, validator)
	})

	t.Run("should register the comparison tag", func(t *testing.T) {
		type Settings struct {
			Comparison string `validate:"comparison"`
		}

		assert.NoError(t, validator.Struct(Settings{Comparison: "ordinal"}))
		assert.Error(t, validator.Struct(Settings{Comparison: "culture"}))
	})
}

func TestFormatError(t *testing.T) {
	t.Run("should transform validation errors to formatted errors", func(t *testing.T) {
		testValidator := gvalidator.New()

		type Settings struct {
			LogLevel string `validate:"required"`
		}

		err := testValidator.Struct(Settings{})
		require.Error(t, err)

		formattedErr := formatError(err)

		assert.ErrorIs(t, formattedErr, ErrValidationFailed)
		assert.Contains(t, formattedErr.Error(), "'LogLevel': value '' does not meet the requirements for the 'required' validation")
	})

	t.Run("should return original error when not validation error", func(t *testing.T) {
		originalErr := errors.New("environment lookup failed")
		formattedErr := formatError(originalErr)

		assert.Equal(t, originalErr, formattedErr)
	})
}

func TestValidate(t *testing.T) {
	type Settings struct {
		LogLevel   string `validate:"required,oneof=debug info warn error"`
		Comparison string `validate:"required,comparison"`
	}

	t.Run("should pass with valid settings", func(t *testing.T) {
		for _, comparison := range []string{"ordinal", "ordinal-ignore-case", "invariant-ignore-case", "ORDINAL"} {
			err := Validate(Settings{LogLevel: "info", Comparison: comparison})
			assert.NoError(t, err, comparison)
		}
	})

	t.Run("should fail when comparison is unknown", func(t *testing.T) {
		err := Validate(Settings{LogLevel: "info", Comparison: "current-culture"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'Comparison': value 'current-culture' does not meet the requirements for the 'comparison' validation")
	})

	t.Run("should fail with multiple validation errors", func(t *testing.T) {
		err := Validate(Settings{LogLevel: "verbose"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)

		errStr := err.Error()
		assert.Contains(t, errStr, "'LogLevel': value 'verbose' does not meet the requirements for the 'oneof' validation")
		assert.Contains(t, errStr, "'Comparison': value '' does not meet the requirements for the 'required' validation")
	})

	t.Run("should fail when input is not struct", func(t *testing.T) {
		for _, input := range []any{"test string", 42, nil, map[string]string{"key": "value"}} {
			assert.Error(t, Validate(input))
		}
	})
}
