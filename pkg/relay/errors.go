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

package relay

import "errors"

var (
	ErrInventoryFetch = errors.New("failed to fetch device inventory")
	ErrSubmit         = errors.New("failed to submit report")
	ErrRunCancelled   = errors.New("run cancelled")

	errMissingField    = errors.New("required setting is missing")
	errOutOfRange      = errors.New("setting out of range")
	errInvalidSetting  = errors.New("invalid setting")
	errInvalidEndpoint = errors.New("service_url must be an absolute http(s) URL")
)
