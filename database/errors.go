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
	"strings"

	"github.com/go-sql-driver/mysql"
)

// SQLError is a portable category for driver-level failures.
type SQLError int

const (
	UnknownErr SQLError = iota
	DuplicateKeyErr
	NotNullViolationErr
	ForeignKeyViolationErr
	CheckConstraintViolationErr
	NoTableErr
	NoColumnErr
	DataTruncatedErr
)

// MySQL reports errors with vendor codes instead of SQLSTATE messages.
var mysqlErrorCodes = map[uint16]SQLError{
	1062: DuplicateKeyErr,
	1048: NotNullViolationErr,
	1216: ForeignKeyViolationErr,
	1217: ForeignKeyViolationErr,
	1452: ForeignKeyViolationErr,
	3819: CheckConstraintViolationErr,
	1146: NoTableErr,
	1054: NoColumnErr,
	1265: DataTruncatedErr,
}

// Postgres (lib/pq embeds SQLSTATE in the message) and SQLite are matched on
// lowercased message fragments.
var messagePatterns = []struct {
	code     SQLError
	patterns []string
}{
	{DuplicateKeyErr, []string{"sqlstate 23505", "duplicate key value", "unique constraint failed"}},
	{NotNullViolationErr, []string{"sqlstate 23502", "not-null constraint", "not null constraint failed"}},
	{ForeignKeyViolationErr, []string{"sqlstate 23503", "foreign key violation", "foreign key constraint failed"}},
	{CheckConstraintViolationErr, []string{"sqlstate 23514", "check constraint"}},
	{NoTableErr, []string{"sqlstate 42p01", "undefined table", "no such table"}},
	{NoColumnErr, []string{"sqlstate 42703", "undefined column", "no such column"}},
	{DataTruncatedErr, []string{"sqlstate 22001", "string data right truncation", "data truncated"}},
}

// IsSQLError classifies a driver error into an SQLError category. The first
// return value reports whether the error was recognized as a database error
// at all.
func IsSQLError(err error) (bool, SQLError) {
	if err == nil {
		return false, UnknownErr
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		if code, ok := mysqlErrorCodes[mysqlErr.Number]; ok {
			return true, code
		}
		return true, UnknownErr
	}

	msg := strings.ToLower(err.Error())
	for _, group := range messagePatterns {
		for _, pattern := range group.patterns {
			if strings.Contains(msg, pattern) {
				return true, group.code
			}
		}
	}
	return false, UnknownErr
}
