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
	"fmt"
	"strings"
)

// Model is implemented by persistable entities. GetID returns a pointer to
// the unique identifier; nil means the entity has not been persisted yet.
type Model[ID any] interface {
	GetID() *ID
}

// ModelName returns the bare type name of T for log and error messages.
// The name is resolved from the instantiated type, not from values, so it is
// safe on zero and nil instances.
func ModelName[T any]() string {
	var zero T
	name := strings.TrimPrefix(fmt.Sprintf("%T", zero), "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
