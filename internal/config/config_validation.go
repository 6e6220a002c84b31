// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] against its `validate` tags.
func (cfg *StructuredConfig) validate() error {
	return validateStruct(cfg)
}

func (cfg *ClientConfig) validate() error {
	return validateStruct(cfg)
}

func validateStruct(v any) error {
	validate := validator.New()

	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fieldLevel.Field().String())
	return err == nil
}
