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

package crudkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/seuhd/crudkit/domain"
)

type testDomain struct {
	ID   int64
	Name string
}

func (d *testDomain) GetID() *int64 {
	if d.ID == 0 {
		return nil
	}
	return &d.ID
}

// fakeDataService records every call made through the port so tests can
// assert call counts and ordering.
type fakeDataService struct {
	calls []string

	getAllResult  []*testDomain
	getAllErr     error
	getByIDResult *testDomain
	getByIDErr    error
	upsertResult  *testDomain
	upsertErr     error
	clearErr      error
	deleteErr     error

	getByIDArgs []int64
	upsertArgs  []*testDomain
	deleteArgs  []int64
}

func (f *fakeDataService) Clear(ctx context.Context) error {
	f.calls = append(f.calls, "Clear")
	return f.clearErr
}

func (f *fakeDataService) GetAll(ctx context.Context) ([]*testDomain, error) {
	f.calls = append(f.calls, "GetAll")
	return f.getAllResult, f.getAllErr
}

func (f *fakeDataService) GetByID(ctx context.Context, id int64) (*testDomain, error) {
	f.calls = append(f.calls, "GetByID")
	f.getByIDArgs = append(f.getByIDArgs, id)
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDResult, nil
}

func (f *fakeDataService) Upsert(ctx context.Context, entity *testDomain) (*testDomain, error) {
	f.calls = append(f.calls, "Upsert")
	f.upsertArgs = append(f.upsertArgs, entity)
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	return f.upsertResult, nil
}

func (f *fakeDataService) Delete(ctx context.Context, id int64) error {
	f.calls = append(f.calls, "Delete")
	f.deleteArgs = append(f.deleteArgs, id)
	return f.deleteErr
}

type ServiceSuite struct {
	suite.Suite
	port *fakeDataService
	svc  Service[*testDomain, int64]
	ctx  context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.port = &fakeDataService{}
	s.svc = NewService[*testDomain, int64](s.port)
	s.ctx = context.Background()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestClearDelegatesToDataService() {
	s.Require().NoError(s.svc.Clear(s.ctx))
	s.Equal([]string{"Clear"}, s.port.calls)
}

func (s *ServiceSuite) TestGetAllReturnsPortSequenceUnmodified() {
	domains := []*testDomain{{ID: 1}, {ID: 2}}
	s.port.getAllResult = domains

	result, err := s.svc.GetAll(s.ctx)

	s.Require().NoError(err)
	s.Equal(domains, result)
	s.Equal([]string{"GetAll"}, s.port.calls)
}

func (s *ServiceSuite) TestGetAllEmptySequence() {
	s.port.getAllResult = []*testDomain{}

	result, err := s.svc.GetAll(s.ctx)

	s.Require().NoError(err)
	s.Empty(result)
}

func (s *ServiceSuite) TestGetByIDReturnsEntity() {
	entity := &testDomain{ID: 1}
	s.port.getByIDResult = entity

	result, err := s.svc.GetByID(s.ctx, 1)

	s.Require().NoError(err)
	s.Same(entity, result)
	s.Equal([]int64{1}, s.port.getByIDArgs)
}

func (s *ServiceSuite) TestGetByIDPropagatesNotFound() {
	portErr := domain.NewNotFoundError("testDomain", int64(1))
	s.port.getByIDErr = portErr

	_, err := s.svc.GetByID(s.ctx, 1)

	s.Require().Error(err)
	s.Equal(portErr, err)
}

func (s *ServiceSuite) TestUpsertCreatesNewEntityWhenIDIsAbsent() {
	object := &testDomain{Name: "new"}
	s.port.upsertResult = &testDomain{ID: 1, Name: "new"}

	result, err := s.svc.Upsert(s.ctx, object)

	s.Require().NoError(err)
	s.Require().NotNil(result.GetID())
	s.Equal(int64(1), *result.GetID())

	// The create path calls the port's Upsert exactly once with the original
	// object and never checks existence.
	s.Equal([]string{"Upsert"}, s.port.calls)
	s.Require().Len(s.port.upsertArgs, 1)
	s.Same(object, s.port.upsertArgs[0])
	s.Empty(s.port.getByIDArgs)
}

func (s *ServiceSuite) TestUpsertUpdatesExistingEntity() {
	object := &testDomain{ID: 1, Name: "updated"}
	s.port.getByIDResult = object
	s.port.upsertResult = object

	result, err := s.svc.Upsert(s.ctx, object)

	s.Require().NoError(err)
	s.Same(object, result)

	// Existence check first, then the write, each exactly once.
	s.Equal([]string{"GetByID", "Upsert"}, s.port.calls)
	s.Equal([]int64{1}, s.port.getByIDArgs)
	s.Require().Len(s.port.upsertArgs, 1)
	s.Same(object, s.port.upsertArgs[0])
}

func (s *ServiceSuite) TestUpsertFailsWhenEntityDoesNotExist() {
	portErr := domain.NewNotFoundError("testDomain", int64(1))
	s.port.getByIDErr = portErr

	_, err := s.svc.Upsert(s.ctx, &testDomain{ID: 1})

	s.Require().Error(err)
	s.Equal(portErr, err)
	s.True(domain.IsNotFound(err))

	// The write must never be attempted.
	s.Equal([]string{"GetByID"}, s.port.calls)
	s.Empty(s.port.upsertArgs)
}

func (s *ServiceSuite) TestUpsertPropagatesDuplicationUnchanged() {
	object := &testDomain{ID: 1, Name: "taken"}
	s.port.getByIDResult = object
	portErr := domain.NewDuplicationError("testDomain", nil)
	s.port.upsertErr = portErr

	_, err := s.svc.Upsert(s.ctx, object)

	s.Require().Error(err)
	s.Equal(portErr, err)
	s.True(domain.IsDuplication(err))
	s.Equal([]string{"GetByID", "Upsert"}, s.port.calls)
}

func (s *ServiceSuite) TestUpsertCreatePropagatesDuplicationUnchanged() {
	portErr := domain.NewDuplicationError("testDomain", nil)
	s.port.upsertErr = portErr

	_, err := s.svc.Upsert(s.ctx, &testDomain{Name: "taken"})

	s.Require().Error(err)
	s.Equal(portErr, err)
	s.Equal([]string{"Upsert"}, s.port.calls)
}

func (s *ServiceSuite) TestDeleteDelegatesWithoutExistenceCheck() {
	s.Require().NoError(s.svc.Delete(s.ctx, 1))

	s.Equal([]string{"Delete"}, s.port.calls)
	s.Equal([]int64{1}, s.port.deleteArgs)
}

func (s *ServiceSuite) TestDeletePropagatesPortError() {
	portErr := domain.NewNotFoundError("testDomain", int64(9))
	s.port.deleteErr = portErr

	err := s.svc.Delete(s.ctx, 9)

	s.Require().Error(err)
	s.Equal(portErr, err)
}
