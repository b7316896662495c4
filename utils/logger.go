/*
 * Copyright 2026 seuhd.
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

// Package utils provides the named logger registry used by the rest of the
// module, built on logrus with environment-driven levels and formats.
package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type Logger = logrus.Logger

var (
	loggerRegistryMu sync.RWMutex
	loggerRegistry   = map[string]*logrus.Logger{}

	defaultConsoleLevel = levelFromEnv("CONSOLE_LOG_LEVEL", logrus.InfoLevel)
	consoleLogFormat    = EnvDefaultString("CONSOLE_LOG_FORMAT", "text")
)

// EnvDefaultString returns the environment value for key, or def when unset.
func EnvDefaultString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// EnvDefaultBool returns the boolean environment value for key, or def when
// unset or unparsable.
func EnvDefaultBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func levelFromEnv(key string, def logrus.Level) logrus.Level {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	if level, err := logrus.ParseLevel(v); err == nil {
		return level
	}
	return def
}

// NewLogger returns the logger registered under name, creating it on first
// use. All callers asking for the same name share one logger instance.
func NewLogger(name string) *logrus.Logger {
	key := strings.ToUpper(strings.TrimSpace(name))

	loggerRegistryMu.RLock()
	logger, ok := loggerRegistry[key]
	loggerRegistryMu.RUnlock()
	if ok {
		return logger
	}

	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	if logger, ok = loggerRegistry[key]; ok {
		return logger
	}

	logger = logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(defaultConsoleLevel)
	if consoleLogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	} else {
		logger.SetFormatter(&namedTextFormatter{name: key})
	}
	loggerRegistry[key] = logger
	return logger
}

// SetLoggerLevel updates the level of the named logger. Unknown level strings
// are ignored so a bad configuration value never silences a logger.
func SetLoggerLevel(name, level string) {
	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return
	}
	NewLogger(name).SetLevel(parsed)
}

// namedTextFormatter renders entries as
// "2026-01-02 15:04:05.000 [NAME] LEVEL message key=value ...".
type namedTextFormatter struct {
	name string
}

func (f *namedTextFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(e.Time.Format("2006-01-02 15:04:05.000"))
	b.WriteString(fmt.Sprintf(" [%s] %s %s", f.name, strings.ToUpper(e.Level.String()), e.Message))
	for _, key := range sortedKeys(e.Data) {
		b.WriteString(fmt.Sprintf(" %s=%v", key, e.Data[key]))
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
