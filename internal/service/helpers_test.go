package service

import (
	"context"
	"testing"

	"ShoppingList/internal/model"
	"ShoppingList/internal/repo"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Моки для StoreRepository и ItemRepository
type mockStoreRepo struct{ mock.Mock }

func (m *mockStoreRepo) List(ctx context.Context) ([]model.Store, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Store); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStoreRepo) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Store); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStoreRepo) Create(ctx context.Context, s *model.Store) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockStoreRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}
func (m *mockStoreRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.StoreRepository = (*mockStoreRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) List(ctx context.Context) ([]model.ShoppingItem, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.ShoppingItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*model.ShoppingItem, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.ShoppingItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Create(ctx context.Context, it *model.ShoppingItem) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}
func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

// fakeSessions отдаёт моки вместо транзакции и считает вызовы.
type fakeSessions struct {
	stores *mockStoreRepo
	items  *mockItemRepo
	calls  int
	err    error
}

func (f *fakeSessions) Stores() repo.StoreRepository { return f.stores }
func (f *fakeSessions) Items() repo.ItemRepository { return f.items }

func (f *fakeSessions) WithSession(_ context.Context, fn func(s repo.Session) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(f)
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{stores: &mockStoreRepo{}, items: &mockItemRepo{}}
}

// newSQLiteDB: настоящая БД для сквозных проверок сервиса.
func newSQLiteDB(t *testing.T) *repo.Database {
	t.Helper()
	db, err := repo.OpenSQLite("file::memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func ptr[T any](v T) *T { return &v }
