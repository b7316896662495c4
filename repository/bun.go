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
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"

	"github.com/seuhd/crudkit/database"
	"github.com/seuhd/crudkit/domain"
	"github.com/seuhd/crudkit/types"
)

// ModelPtr constrains T to a pointer to the entity struct E that also
// satisfies the domain model contract.
type ModelPtr[E any, ID any] interface {
	*E
	domain.Model[ID]
}

type bunRepository[E any, T ModelPtr[E, ID], ID comparable] struct {
	db    *bun.DB
	model string
}

// NewBunRepository returns a generic Repository backed by the provided Bun
// DB. E is the entity struct, *E must implement domain.Model[ID]:
//
//	repo := NewBunRepository[Pos, *Pos, int64](db)
func NewBunRepository[E any, T ModelPtr[E, ID], ID comparable](db *bun.DB) Repository[T, ID] {
	return &bunRepository[E, T, ID]{db: db, model: domain.ModelName[E]()}
}

func (r *bunRepository[E, T, ID]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *bunRepository[E, T, ID]) NewSelect() *bun.SelectQuery { return r.db.NewSelect() }

func (r *bunRepository[E, T, ID]) NewInsert() *bun.InsertQuery { return r.db.NewInsert() }

func (r *bunRepository[E, T, ID]) NewUpdate() *bun.UpdateQuery { return r.db.NewUpdate() }

func (r *bunRepository[E, T, ID]) NewDelete() *bun.DeleteQuery { return r.db.NewDelete() }

func (r *bunRepository[E, T, ID]) Clear(ctx context.Context) error {
	_, err := r.db.NewDelete().Model((*E)(nil)).Where("1 = 1").Exec(ctx)
	return err
}

func (r *bunRepository[E, T, ID]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.NewSelect().Model(&entities).Order("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	if entities == nil {
		entities = make([]T, 0)
	}
	return entities, nil
}

func (r *bunRepository[E, T, ID]) GetByID(ctx context.Context, id ID) (T, error) {
	var zero T
	entity := T(new(E))
	if err := r.db.NewSelect().Model(entity).Where("id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, domain.NewNotFoundError(r.model, id)
		}
		return zero, err
	}
	return entity, nil
}

// Upsert inserts when the identifier is absent and updates by primary key
// otherwise, then re-reads the row so database-assigned fields (identifier,
// timestamps, defaults) are visible in the returned instance.
func (r *bunRepository[E, T, ID]) Upsert(ctx context.Context, entity T) (T, error) {
	var zero T

	if entity.GetID() == nil {
		if _, err := r.db.NewInsert().Model(entity).Exec(ctx); err != nil {
			return zero, r.translateWriteError(err)
		}
	} else {
		if _, err := r.db.NewUpdate().Model(entity).WherePK().Exec(ctx); err != nil {
			return zero, r.translateWriteError(err)
		}
	}

	id := entity.GetID()
	if id == nil {
		return zero, fmt.Errorf("%s insert did not assign an identifier", r.model)
	}
	return r.GetByID(ctx, *id)
}

func (r *bunRepository[E, T, ID]) Delete(ctx context.Context, id ID) error {
	_, err := r.db.NewDelete().Model((*E)(nil)).Where("id = ?", id).Exec(ctx)
	return err
}

func (r *bunRepository[E, T, ID]) List(ctx context.Context, filter *types.QueryFilter) ([]T, error) {
	var entities []T
	query := r.db.NewSelect().Model(&entities)
	if filter != nil {
		query = query.Where(filter.Schema, filter.Args...)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	if entities == nil {
		entities = make([]T, 0)
	}
	return entities, nil
}

func (r *bunRepository[E, T, ID]) Query(ctx context.Context, query string, args ...interface{}) ([]T, error) {
	var entities []T
	if err := r.db.NewSelect().Model(&entities).Where(query, args...).Scan(ctx); err != nil {
		return nil, err
	}
	if entities == nil {
		entities = make([]T, 0)
	}
	return entities, nil
}

func (r *bunRepository[E, T, ID]) Page(ctx context.Context, pageRequest *types.PageRequest) (*types.Pagination[T], error) {
	var entities []T
	query := r.db.NewSelect().Model(&entities)
	if pageRequest.GetFilter() != nil {
		query = query.Where(pageRequest.GetFilter().Schema, pageRequest.GetFilter().Args...)
	}

	pagination := types.NewDefaultPagination[T](pageRequest.GetPage(), pageRequest.GetPageSize())
	total, err := query.Count(ctx)
	if err != nil || total == 0 {
		return pagination, err
	}

	err = query.
		Offset(pageRequest.GetOffset()).
		Limit(pageRequest.GetPageSize()).
		Order(pageRequest.GetOrders()...).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	pagination.Total = total
	pagination.Items = entities
	return pagination, nil
}

func (r *bunRepository[E, T, ID]) translateWriteError(err error) error {
	if is, code := database.IsSQLError(err); is && code == database.DuplicateKeyErr {
		return domain.NewDuplicationError(r.model, err)
	}
	return err
}
