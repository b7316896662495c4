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

package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports that no instance of a model exists for an identifier.
// Data access implementations return it from lookups and the entity service
// surfaces it unchanged.
type NotFoundError struct {
	Model string
	ID    any
}

// NewNotFoundError builds a NotFoundError for the given model name and id.
func NewNotFoundError(model string, id any) *NotFoundError {
	return &NotFoundError{Model: model, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%v' not found", e.Model, e.ID)
}

// DuplicationError reports that a write violated a uniqueness constraint.
// It wraps the underlying driver error so callers can still inspect it.
type DuplicationError struct {
	Model string
	Err   error
}

// NewDuplicationError builds a DuplicationError wrapping the driver error.
func NewDuplicationError(model string, err error) *DuplicationError {
	return &DuplicationError{Model: model, Err: err}
}

func (e *DuplicationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s violates a uniqueness constraint", e.Model)
	}
	return fmt.Sprintf("%s violates a uniqueness constraint: %v", e.Model, e.Err)
}

func (e *DuplicationError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsDuplication reports whether err is or wraps a DuplicationError.
func IsDuplication(err error) bool {
	var target *DuplicationError
	return errors.As(err, &target)
}
