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
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleEntity struct {
	ID int64
}

func (e *sampleEntity) GetID() *int64 {
	if e.ID == 0 {
		return nil
	}
	return &e.ID
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "sampleEntity", ModelName[sampleEntity]())
	assert.Equal(t, "sampleEntity", ModelName[*sampleEntity]())
	assert.Equal(t, "int64", ModelName[int64]())
}

func TestModelIDAbsence(t *testing.T) {
	var m Model[int64] = &sampleEntity{}
	assert.Nil(t, m.GetID())

	m = &sampleEntity{ID: 7}
	if assert.NotNil(t, m.GetID()) {
		assert.Equal(t, int64(7), *m.GetID())
	}
}
