package testutil

import (
	"context"

	"github.com/dimitrije/collage-api/internal/framecheck"
	"github.com/dimitrije/collage-api/internal/models"
	"github.com/dimitrije/collage-api/pkg/dto"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository mocks repository.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Insert(ctx context.Context, c *models.Collage) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, skip, limit int64) ([]models.Summary, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Summary), args.Error(1)
}

func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id string) (*models.Collage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collage), args.Error(1)
}

// MockCollageService mocks the CollageService
type MockCollageService struct {
	mock.Mock
}

func (m *MockCollageService) List(ctx context.Context, page int) (*dto.ListResponse, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListResponse), args.Error(1)
}

func (m *MockCollageService) Get(ctx context.Context, id string) (*models.Collage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collage), args.Error(1)
}

func (m *MockCollageService) Save(ctx context.Context, req *dto.SaveCollageRequest) (*dto.SaveResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SaveResponse), args.Error(1)
}

// MockFrameChecker mocks the framecheck.Checker
type MockFrameChecker struct {
	mock.Mock
}

func (m *MockFrameChecker) Check(ctx context.Context, target string) (*framecheck.Result, error) {
	args := m.Called(ctx, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*framecheck.Result), args.Error(1)
}
