// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strings"

	"github.com/anacrolix/log"
)

var logger = log.Default.WithNames("avlset")

// configureLogging narrows the package logger to the configured level.
func configureLogging(level string) {
	logger = log.Default.WithNames("avlset").FilterLevel(parseLogLevel(level))
}

func parseLogLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.Debug
	case "warn", "warning":
		return log.Warning
	case "error":
		return log.Error
	case "critical":
		return log.Critical
	}
	return log.Info
}
