package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/globetrotter-app/backend/internal/domain"
	"github.com/globetrotter-app/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each method is a
// function field — set only the ones your test needs; an unset field that
// gets called panics.

type mockUserRepo struct {
	create     func(ctx context.Context, user domain.User) (domain.User, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.User, error)
	getByEmail func(ctx context.Context, email string) (domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}

type mockTripRepo struct {
	create     func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listByUser func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update     func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listByUser(ctx, userID, p)
}
func (m *mockTripRepo) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockStopRepo struct {
	create     func(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Stop, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockStopRepo) Create(ctx context.Context, s domain.Stop) (domain.Stop, error) {
	return m.create(ctx, s)
}
func (m *mockStopRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Stop, error) {
	return m.getByID(ctx, id)
}
func (m *mockStopRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockStopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockActivityRepo struct {
	create     func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	listByStop func(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, id)
}
func (m *mockActivityRepo) ListByStop(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error) {
	return m.listByStop(ctx, stopID)
}
func (m *mockActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockAtomic satisfies repo.Atomic by calling fn with a fixed Repos bundle —
// no real transaction. The services under test only care that the check and
// the write see the same repos.
type mockAtomic struct {
	repos repo.Repos
}

func (m *mockAtomic) InTx(_ context.Context, fn func(repo.Repos) error) error {
	return fn(m.repos)
}

// compile-time checks: every mock must satisfy its repo interface.
var (
	_ repo.UserRepo     = (*mockUserRepo)(nil)
	_ repo.TripRepo     = (*mockTripRepo)(nil)
	_ repo.StopRepo     = (*mockStopRepo)(nil)
	_ repo.ActivityRepo = (*mockActivityRepo)(nil)
	_ repo.Atomic       = (*mockAtomic)(nil)
)
