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

package config

import "errors"

var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrConfigRead         = errors.New("failed to read configuration")
	ErrUnsupportedFormat  = errors.New("unsupported configuration format")
	errInvalidConfigPtr   = errors.New("config must be a non-nil pointer")
	errInvalidDurationStr = errors.New("invalid duration")
)
