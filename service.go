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

// Package crudkit provides a generic CRUD entity service that delegates all
// persistence work to a data access port, adding logging and an
// existence-before-update check around upserts.
package crudkit

import (
	"context"
	"sync"

	"github.com/seuhd/crudkit/database"
	"github.com/seuhd/crudkit/domain"
	"github.com/seuhd/crudkit/repository"
)

// Service exposes a uniform CRUD contract over a domain model. It is
// stateless between calls; the data access port owns the persisted state.
type Service[T domain.Model[ID], ID comparable] interface {
	// Clear removes all persisted instances. Intended for test and reset
	// scenarios, not production use.
	Clear(ctx context.Context) error

	// GetAll returns every persisted instance; an empty slice means none
	// exist. The order is defined by the data access port.
	GetAll(ctx context.Context) ([]T, error)

	// GetByID returns the instance with the given identifier or a
	// domain.NotFoundError.
	GetByID(ctx context.Context, id ID) (T, error)

	// Upsert creates the instance when its identifier is absent and updates
	// it otherwise. The update path fails with a domain.NotFoundError when
	// the identifier is unknown, before any write is attempted. Uniqueness
	// violations surface as domain.DuplicationError. The returned instance
	// carries identifier and timestamp fields assigned by the data layer.
	Upsert(ctx context.Context, object T) (T, error)

	// Delete removes the instance with the given identifier. Unlike the
	// update path of Upsert, no existence check precedes the delete; unknown
	// identifiers are handled by the data access port.
	Delete(ctx context.Context, id ID) error
}

type crudServiceImpl[T domain.Model[ID], ID comparable] struct {
	dataService repository.CrudDataService[T, ID]
	model       string
	logger      database.Logger
}

// NewService returns a Service delegating to the given data access port. The
// model label used in log messages is derived from the instantiated type.
func NewService[T domain.Model[ID], ID comparable](dataService repository.CrudDataService[T, ID]) Service[T, ID] {
	return &crudServiceImpl[T, ID]{
		dataService: dataService,
		model:       domain.ModelName[T](),
		logger:      database.GetLogger(),
	}
}

func (s *crudServiceImpl[T, ID]) Clear(ctx context.Context) error {
	s.logger.Warn("Clearing all data", "model", s.model)
	return s.dataService.Clear(ctx)
}

func (s *crudServiceImpl[T, ID]) GetAll(ctx context.Context) ([]T, error) {
	s.logger.Debug("Retrieving all", "model", s.model)
	return s.dataService.GetAll(ctx)
}

func (s *crudServiceImpl[T, ID]) GetByID(ctx context.Context, id ID) (T, error) {
	s.logger.Debug("Retrieving by ID", "model", s.model, "id", id)
	return s.dataService.GetByID(ctx, id)
}

func (s *crudServiceImpl[T, ID]) Upsert(ctx context.Context, object T) (T, error) {
	var zero T

	if id := object.GetID(); id == nil {
		s.logger.Info("Creating new", "model", s.model)
	} else {
		s.logger.Info("Updating", "model", s.model, "id", *id)
		// The instance must exist before the update. The read result is
		// discarded; only the NotFound check matters.
		if _, err := s.dataService.GetByID(ctx, *id); err != nil {
			return zero, err
		}
	}

	upserted, err := s.dataService.Upsert(ctx, object)
	if err != nil {
		if domain.IsDuplication(err) {
			s.logger.Error("Upsert failed", "model", s.model, "error", err)
		}
		return zero, err
	}

	if id := upserted.GetID(); id != nil {
		s.logger.Info("Successfully upserted", "model", s.model, "id", *id)
	}
	return upserted, nil
}

func (s *crudServiceImpl[T, ID]) Delete(ctx context.Context, id ID) error {
	s.logger.Info("Deleting", "model", s.model, "id", id)
	if err := s.dataService.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Deleted", "model", s.model, "id", id)
	return nil
}

// NewBunService returns a Service backed by the generic Bun repository on the
// global database connection. The repository is created lazily so services
// can be declared before database.InitDB runs:
//
//	var posService = crudkit.NewBunService[Pos, *Pos, int64]()
func NewBunService[E any, T repository.ModelPtr[E, ID], ID comparable]() Service[T, ID] {
	return &bunServiceImpl[E, T, ID]{}
}

type bunServiceImpl[E any, T repository.ModelPtr[E, ID], ID comparable] struct {
	service Service[T, ID]
	once    sync.Once
}

func (s *bunServiceImpl[E, T, ID]) delegate() Service[T, ID] {
	s.once.Do(func() {
		s.service = NewService[T, ID](repository.NewBunRepository[E, T, ID](database.GetDB()))
	})
	return s.service
}

func (s *bunServiceImpl[E, T, ID]) Clear(ctx context.Context) error {
	return s.delegate().Clear(ctx)
}

func (s *bunServiceImpl[E, T, ID]) GetAll(ctx context.Context) ([]T, error) {
	return s.delegate().GetAll(ctx)
}

func (s *bunServiceImpl[E, T, ID]) GetByID(ctx context.Context, id ID) (T, error) {
	return s.delegate().GetByID(ctx, id)
}

func (s *bunServiceImpl[E, T, ID]) Upsert(ctx context.Context, object T) (T, error) {
	return s.delegate().Upsert(ctx, object)
}

func (s *bunServiceImpl[E, T, ID]) Delete(ctx context.Context, id ID) error {
	return s.delegate().Delete(ctx, id)
}
