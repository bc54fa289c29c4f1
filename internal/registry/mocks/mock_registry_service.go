package mocks

import (
	"context"

	"docregistry/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockRegistryService struct {
	mock.Mock
}

func (m *MockRegistryService) Register(ctx context.Context, caller, documentID, documentHash, documentType string) (*model.Document, error) {
	args := m.Called(ctx, caller, documentID, documentHash, documentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockRegistryService) Verify(ctx context.Context, caller, documentID, candidateHash string) (bool, error) {
	args := m.Called(ctx, caller, documentID, candidateHash)
	return args.Bool(0), args.Error(1)
}

func (m *MockRegistryService) Get(ctx context.Context, owner, documentID string) (*model.Document, error) {
	args := m.Called(ctx, owner, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockRegistryService) ListIDs(ctx context.Context, owner string) ([]string, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRegistryService) Count(ctx context.Context, owner string) (int, error) {
	args := m.Called(ctx, owner)
	return args.Int(0), args.Error(1)
}
