/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads a configuration file into a struct, applies
// environment overrides and validates the result.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/carverauto/snmp-relay/pkg/logger"
)

// defaultSection holds the keys of an INI file written without explicit
// sections, or under [DEFAULT].
const defaultSection = "default"

var supportedTypes = map[string]string{
	"ini":  "ini",
	"yaml": "yaml",
	"yml":  "yaml",
	"json": "json",
}

// Validator is implemented by configurations that can check themselves.
type Validator interface {
	Validate() error
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}

	return v.Validate()
}

// Loader reads configuration files with viper.
type Loader struct {
	envPrefix string
	logger    logger.Logger
}

// NewLoader returns a Loader that lets environment variables named
// <envPrefix>_<KEY> override file values.
func NewLoader(envPrefix string, log logger.Logger) *Loader {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Loader{
		envPrefix: envPrefix,
		logger:    log,
	}
}

// LoadAndValidate reads path into dst, applies environment overrides and
// validates dst. An empty path loads from the environment only.
func (l *Loader) LoadAndValidate(ctx context.Context, path string, dst interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if rv := reflect.ValueOf(dst); rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errInvalidConfigPtr
	}

	v := viper.New()

	if l.envPrefix != "" {
		v.SetEnvPrefix(l.envPrefix)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if err := readFile(v, path); err != nil {
			return err
		}

		l.logger.Debug().Str("path", path).Msg("Loaded configuration file")
	}

	if err := bindEnv(v, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigRead, err)
	}

	if err := v.Unmarshal(dst, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		DurationHook(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := ValidateConfig(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func readFile(v *viper.Viper, path string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	configType, ok := supportedTypes[ext]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	v.SetConfigType(configType)

	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigRead, err)
	}
	defer func() { _ = fh.Close() }()

	if err := v.ReadConfig(fh); err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrConfigRead, path, err)
	}

	if configType == "ini" {
		if section := v.GetStringMap(defaultSection); len(section) > 0 {
			if err := v.MergeConfigMap(section); err != nil {
				return fmt.Errorf("%w: '%s': %w", ErrConfigRead, path, err)
			}
		}
	}

	return nil
}

// bindEnv registers every mapstructure key of dst with viper so environment
// variables apply even when the file does not mention the key.
func bindEnv(v *viper.Viper, dst interface{}) error {
	keys := map[string]interface{}{}

	if err := mapstructure.Decode(dst, &keys); err != nil {
		return err
	}

	for k := range keys {
		if err := v.BindEnv(k); err != nil {
			return err
		}
	}

	return nil
}
