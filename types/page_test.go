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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestDefaults(t *testing.T) {
	req := NewDefaultPageRequest(0, 0)

	assert.Equal(t, 1, req.GetPage())
	assert.Equal(t, 10, req.GetPageSize())
	assert.Equal(t, 0, req.GetOffset())
	assert.Nil(t, req.GetFilter())
	assert.Empty(t, req.GetOrders())
}

func TestPageRequestOffset(t *testing.T) {
	req := NewDefaultPageRequest(3, 25)

	assert.Equal(t, 50, req.GetOffset())
}

func TestPageRequestWithFilterAndOrders(t *testing.T) {
	filter := NewQueryFilter("campus = ?", "Main")
	req := NewPageRequest(2, 5, filter, []string{"id ASC"})

	assert.Same(t, filter, req.GetFilter())
	assert.Equal(t, []string{"id ASC"}, req.GetOrders())
}

func TestJsonObjectScan(t *testing.T) {
	var obj JsonObject
	assert.NoError(t, obj.Scan([]byte(`{"wifi":true}`)))
	assert.Equal(t, true, obj["wifi"])

	var fromString JsonObject
	assert.NoError(t, fromString.Scan(`{"seats":12}`))
	assert.Equal(t, float64(12), fromString["seats"])

	var fromNil JsonObject
	assert.NoError(t, fromNil.Scan(nil))
	assert.NotNil(t, fromNil)
	assert.Empty(t, fromNil)

	assert.Error(t, fromNil.Scan(42))
}
