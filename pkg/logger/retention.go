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

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const hoursPerDay = 24

// CleanupOldLogs removes daily log files in dir whose date is more than
// retentionDays before now. Files that do not follow the daily naming are left
// alone. A non-positive retention keeps everything.
func CleanupOldLogs(dir string, retentionDays int, now time.Time) []error {
	if retentionDays <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return []error{fmt.Errorf("failed to list %s: %w", dir, err)}
	}

	cutoff := now.Add(-time.Duration(retentionDays) * hoursPerDay * time.Hour)

	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		day, ok := parseLogDate(entry.Name(), now.Location())
		if !ok || !day.Before(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove old log %s: %w", entry.Name(), err))
		}
	}

	return errs
}

func parseLogDate(name string, loc *time.Location) (time.Time, bool) {
	if !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, logFileSuffix) {
		return time.Time{}, false
	}

	stamp := strings.TrimSuffix(strings.TrimPrefix(name, logFilePrefix), logFileSuffix)

	day, err := time.ParseInLocation(logDateLayout, stamp, loc)
	if err != nil {
		return time.Time{}, false
	}

	return day, true
}
