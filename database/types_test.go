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

package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.yaml")
	content := []byte(`
connection:
  type: postgres
  host: 127.0.0.1
  port: 5432
  username: crudkit
  dbname: campus
  max_open_conns: 20
migrate:
  on_startup: true
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Connection.Type)
	assert.Equal(t, 5432, cfg.Connection.Port)
	assert.Equal(t, "campus", cfg.Connection.DBName)
	assert.Equal(t, 20, cfg.Connection.MaxOpenConns)
	assert.True(t, cfg.Migrate.OnStartup)

	// Unset fields keep their defaults.
	defaults := DefaultConnectionConfig()
	assert.Equal(t, defaults.MaxIdleConns, cfg.Connection.MaxIdleConns)
	assert.Equal(t, defaults.ConnectTimeout, cfg.Connection.ConnectTimeout)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("connection: ["), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
