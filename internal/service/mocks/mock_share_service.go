package mocks

import (
	"context"

	"doclib/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) Generate(ctx context.Context, documentID, duration string) (string, error) {
	args := m.Called(ctx, documentID, duration)
	return args.String(0), args.Error(1)
}

func (m *MockShareService) ChangeValidity(ctx context.Context, shareID, newDuration string) (string, error) {
	args := m.Called(ctx, shareID, newDuration)
	return args.String(0), args.Error(1)
}

func (m *MockShareService) Resolve(ctx context.Context, shareID string) (*service.FileStream, error) {
	args := m.Called(ctx, shareID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FileStream), args.Error(1)
}
