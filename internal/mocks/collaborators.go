package mocks

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"cms-admin/internal/auth"
)

// ObjectStore is a mock of storage.ObjectStore.
type ObjectStore struct {
	mock.Mock
}

// NewObjectStore creates the mock and registers expectation checks with the
// test cleanup.
func NewObjectStore(t *testing.T) *ObjectStore {
	m := &ObjectStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ObjectStore) Put(ctx context.Context, path string, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, path, contentType, r)
	return args.String(0), args.Error(1)
}

func (m *ObjectStore) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *ObjectStore) DeletePrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

// Verifier is a mock of auth.Verifier.
type Verifier struct {
	mock.Mock
}

// NewVerifier creates the mock and registers expectation checks with the
// test cleanup.
func NewVerifier(t *testing.T) *Verifier {
	m := &Verifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Verifier) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}
