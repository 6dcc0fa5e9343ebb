// Package config provides internal configuration loading and processing.
package config

import (
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/pixolin/wpplugin/pkg/config"
)

// CustomDecoderConfig returns a mapstructure decoder config with custom type hooks
// for handling Duration and Format types.
func CustomDecoderConfig() *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToDurationHookFunc(),
			stringToFormatHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           nil, // Set by caller
	}
}

// stringToDurationHookFunc returns a decode hook for converting strings to config.Duration.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if t != reflect.TypeFor[config.Duration]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, err
			}

			return config.Duration(d), nil

		case int64:
			return config.Duration(time.Duration(v)), nil

		case float64:
			return config.Duration(time.Duration(v)), nil

		default:
			return data, nil
		}
	}
}

// stringToFormatHookFunc returns a decode hook for converting strings to config.Format.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToFormatHookFunc() mapstructure.DecodeHookFunc {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if t != reflect.TypeFor[config.Format]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return config.ParseFormat(v)

		case int:
			return config.Format(v), nil

		case int64:
			return config.Format(v), nil

		default:
			return data, nil
		}
	}
}
