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

// Package models holds the data model shared by the polling pipeline.
package models

// Variable is a named SNMP object identifier to read from a device.
type Variable struct {
	Label string
	OID   string
}

// Device is a polling target built from the inventory at the start of a run.
type Device struct {
	Name      string
	Address   string
	Variables []Variable
}
