// Package mocks содержит моки репозиториев для unit-тестов.
package mocks

import (
	"context"

	"standup-report-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *ReportRepository) GetByID(ctx context.Context, reportID string) (*domain.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *ReportRepository) Update(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *ReportRepository) ListByTeam(ctx context.Context, teamID string, filter domain.ReportListFilter) ([]*domain.Report, error) {
	args := m.Called(ctx, teamID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Report), args.Error(1)
}

func (m *ReportRepository) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*domain.Report, error) {
	args := m.Called(ctx, userID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Report), args.Error(1)
}

func (m *ReportRepository) ListByKeywords(ctx context.Context, teamID string, keywords []string) ([]*domain.Report, error) {
	args := m.Called(ctx, teamID, keywords)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Report), args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserRepository) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *UserRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) Create(ctx context.Context, team *domain.Team, creatorID string) error {
	args := m.Called(ctx, team, creatorID)
	return args.Error(0)
}

func (m *TeamRepository) GetByID(ctx context.Context, teamID string) (*domain.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *TeamRepository) UpdateName(ctx context.Context, teamID, name string) (*domain.Team, error) {
	args := m.Called(ctx, teamID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *TeamRepository) ListByMember(ctx context.Context, userID string, skip, limit int) ([]*domain.Team, error) {
	args := m.Called(ctx, userID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *TeamRepository) ExistsTeam(ctx context.Context, teamID string) (bool, error) {
	args := m.Called(ctx, teamID)
	return args.Bool(0), args.Error(1)
}

func (m *TeamRepository) AddMember(ctx context.Context, teamID, userID string) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) GetTeamReportStats(ctx context.Context, teamID string) ([]*domain.ReportStat, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReportStat), args.Error(1)
}

func (m *StatsRepository) GetTeamHelperStats(ctx context.Context, teamID string) ([]*domain.HelperStat, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HelperStat), args.Error(1)
}
