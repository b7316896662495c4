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
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsSQLErrorMySQLCodes(t *testing.T) {
	is, code := IsSQLError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'x' for key 'name'"})
	assert.True(t, is)
	assert.Equal(t, DuplicateKeyErr, code)

	is, code = IsSQLError(&mysql.MySQLError{Number: 1146, Message: "Table 'who.pos' doesn't exist"})
	assert.True(t, is)
	assert.Equal(t, NoTableErr, code)

	// Recognized as a database error even when the code is not mapped.
	is, code = IsSQLError(&mysql.MySQLError{Number: 1040, Message: "Too many connections"})
	assert.True(t, is)
	assert.Equal(t, UnknownErr, code)
}

func TestIsSQLErrorMessagePatterns(t *testing.T) {
	cases := []struct {
		err  error
		code SQLError
	}{
		{errors.New(`duplicate key value violates unique constraint "pos_name_key" (SQLSTATE 23505)`), DuplicateKeyErr},
		{errors.New("constraint failed: UNIQUE constraint failed: pos.name (2067)"), DuplicateKeyErr},
		{errors.New("NOT NULL constraint failed: pos.campus"), NotNullViolationErr},
		{errors.New("no such table: pos"), NoTableErr},
		{errors.New(`column "campus" of relation "pos" does not exist (SQLSTATE 42703)`), NoColumnErr},
	}
	for _, tc := range cases {
		is, code := IsSQLError(tc.err)
		assert.True(t, is, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestIsSQLErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("saving entity: %w", &mysql.MySQLError{Number: 1062})
	is, code := IsSQLError(wrapped)
	assert.True(t, is)
	assert.Equal(t, DuplicateKeyErr, code)
}

func TestIsSQLErrorUnrecognized(t *testing.T) {
	is, code := IsSQLError(errors.New("connection refused"))
	assert.False(t, is)
	assert.Equal(t, UnknownErr, code)

	is, _ = IsSQLError(nil)
	assert.False(t, is)
}
