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

package repository

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"

	"github.com/seuhd/crudkit/domain"
	"github.com/seuhd/crudkit/types"
)

// CrudDataService is the data access port consumed by the entity service.
// Implementations own identifier and timestamp assignment on create and
// uniqueness enforcement on writes.
type CrudDataService[T domain.Model[ID], ID comparable] interface {
	// Clear removes every persisted instance of the model.
	Clear(ctx context.Context) error

	// GetAll returns all persisted instances; their order is defined by the
	// data layer. An empty slice means no instances exist.
	GetAll(ctx context.Context) ([]T, error)

	// GetByID returns the instance with the given identifier, or a
	// domain.NotFoundError when the identifier is unknown.
	GetByID(ctx context.Context, id ID) (T, error)

	// Upsert persists the instance, assigning identifier and timestamp
	// fields on create, and returns the persisted state. Uniqueness
	// violations surface as domain.DuplicationError.
	Upsert(ctx context.Context, entity T) (T, error)

	// Delete removes the instance with the given identifier.
	Delete(ctx context.Context, id ID) error
}

// QueryRepository extends the port with filtered, raw, and paginated reads.
type QueryRepository[T domain.Model[ID], ID comparable] interface {
	List(ctx context.Context, filter *types.QueryFilter) ([]T, error)
	Query(ctx context.Context, query string, args ...interface{}) ([]T, error)
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)
}

// Repository combines the CRUD port with extended queries and exposes Bun
// query builders for advanced use cases.
type Repository[T domain.Model[ID], ID comparable] interface {
	CrudDataService[T, ID]
	QueryRepository[T, ID]
	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}
