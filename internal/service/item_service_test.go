package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ShoppingList/internal/apperr"
	"ShoppingList/internal/model"
	"ShoppingList/internal/nullable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestItemUpdate_Changes(t *testing.T) {
	d := model.NewDate(2025, time.January, 15)

	assert.Empty(t, ItemUpdate{}.changes())
	assert.Equal(t, map[string]any{"is_checked": true}, ItemUpdate{IsChecked: ptr(true)}.changes())
	assert.Equal(t, map[string]any{"need_by_date": nil}, ItemUpdate{NeedByDate: nullable.Null[model.Date]()}.changes())
	assert.Equal(t, map[string]any{"need_by_date": d, "store_id": int64(2)},
		ItemUpdate{NeedByDate: nullable.Of(d), StoreID: ptr(int64(2))}.changes())
}

func TestItemService_CreateDefaultQuantity(t *testing.T) {
	f := newFakeSessions()
	svc := NewItemService(f, zap.NewNop().Sugar())

	f.items.On("Create", mock.Anything, mock.MatchedBy(func(it *model.ShoppingItem) bool {
		return it.Name == "Eggs" && it.Quantity == model.DefaultQuantity && it.StoreID == 1 && !it.IsChecked
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.ShoppingItem).ID = 5
	}).Return(nil).Once()
	f.items.On("GetByID", mock.Anything, int64(5)).
		Return(&model.ShoppingItem{ID: 5, Name: "Eggs", Quantity: "1", StoreID: 1}, nil).Once()

	got, err := svc.Create(context.Background(), ItemCreate{Name: " Eggs", StoreID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	f.items.AssertExpectations(t)
}

func TestItemService_CreateValidation(t *testing.T) {
	f := newFakeSessions()
	svc := NewItemService(f, zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := svc.Create(ctx, ItemCreate{Name: "Eggs"})
	typed := apperr.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, apperr.CodeValidation, typed.Code())
	assert.Contains(t, typed.Details(), "store_id")

	_, err = svc.Create(ctx, ItemCreate{Name: "", StoreID: 1})
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))

	_, err = svc.Update(ctx, 1, ItemUpdate{StoreID: ptr(int64(-1))})
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	assert.Zero(t, f.calls)
}

func TestItemService_ForeignKeyMapsToIntegrity(t *testing.T) {
	f := newFakeSessions()
	svc := NewItemService(f, zap.NewNop().Sugar())

	f.items.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: fk", gorm.ErrForeignKeyViolated)).Once()

	_, err := svc.Create(context.Background(), ItemCreate{Name: "Eggs", StoreID: 999})
	typed := apperr.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, apperr.CodeIntegrity, typed.Code())
	assert.Equal(t, "Store not found", typed.Message())
}

func TestItemService_NotFoundMessage(t *testing.T) {
	f := newFakeSessions()
	svc := NewItemService(f, zap.NewNop().Sugar())

	f.items.On("Delete", mock.Anything, int64(7)).Return(gorm.ErrRecordNotFound).Once()
	typed := apperr.As(svc.Delete(context.Background(), 7))
	require.NotNil(t, typed)
	assert.Equal(t, apperr.CodeNotFound, typed.Code())
	assert.Equal(t, "Item not found", typed.Message())
}

// Сквозные проверки на SQLite

func TestItemService_Scenario(t *testing.T) {
	db := newSQLiteDB(t)
	stores := NewStoreService(db, zap.NewNop().Sugar())
	items := NewItemService(db, zap.NewNop().Sugar())
	ctx := context.Background()

	costco, err := stores.Create(ctx, StoreCreate{Name: "Costco"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultStoreColor, costco.Color)
	assert.Equal(t, model.DefaultStoreIcon, costco.Icon)

	eggs, err := items.Create(ctx, ItemCreate{Name: "Eggs", StoreID: costco.ID})
	require.NoError(t, err)
	assert.Equal(t, "1", eggs.Quantity)
	assert.False(t, eggs.IsChecked)
	assert.Nil(t, eggs.NeedByDate)
	require.NotNil(t, eggs.Store)
	assert.Equal(t, "Costco", eggs.Store.Name)

	time.Sleep(10 * time.Millisecond)
	checked, err := items.Update(ctx, eggs.ID, ItemUpdate{IsChecked: ptr(true)})
	require.NoError(t, err)
	assert.True(t, checked.IsChecked)
	assert.Equal(t, "Eggs", checked.Name)
	assert.Equal(t, "1", checked.Quantity)
	assert.True(t, checked.UpdatedAt.After(eggs.UpdatedAt))

	require.NoError(t, stores.Delete(ctx, costco.ID))
	list, err := items.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestItemService_UnknownStoreWritesNothing(t *testing.T) {
	db := newSQLiteDB(t)
	stores := NewStoreService(db, zap.NewNop().Sugar())
	items := NewItemService(db, zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := items.Create(ctx, ItemCreate{Name: "Ghost", StoreID: 999})
	assert.Equal(t, apperr.CodeIntegrity, apperr.CodeOf(err))

	s, err := stores.Create(ctx, StoreCreate{Name: "Real"})
	require.NoError(t, err)
	it, err := items.Create(ctx, ItemCreate{Name: "Milk", StoreID: s.ID})
	require.NoError(t, err)

	_, err = items.Update(ctx, it.ID, ItemUpdate{StoreID: ptr(int64(999))})
	assert.Equal(t, apperr.CodeIntegrity, apperr.CodeOf(err))

	list, err := items.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, s.ID, list[0].StoreID)
}

func TestItemService_NeedByDateSetAndClear(t *testing.T) {
	db := newSQLiteDB(t)
	stores := NewStoreService(db, zap.NewNop().Sugar())
	items := NewItemService(db, zap.NewNop().Sugar())
	ctx := context.Background()

	s, err := stores.Create(ctx, StoreCreate{Name: "Market"})
	require.NoError(t, err)
	d := model.NewDate(2025, time.March, 1)
	it, err := items.Create(ctx, ItemCreate{Name: "Bread", Quantity: ptr("2 loaves"), StoreID: s.ID, NeedByDate: &d})
	require.NoError(t, err)
	require.NotNil(t, it.NeedByDate)
	assert.Equal(t, "2025-03-01", it.NeedByDate.String())

	// поле не передано: дата сохраняется
	it, err = items.Update(ctx, it.ID, ItemUpdate{Name: ptr("Rye bread")})
	require.NoError(t, err)
	require.NotNil(t, it.NeedByDate)
	assert.Equal(t, "2 loaves", it.Quantity)

	it, err = items.Update(ctx, it.ID, ItemUpdate{NeedByDate: nullable.Null[model.Date]()})
	require.NoError(t, err)
	assert.Nil(t, it.NeedByDate)
	assert.Equal(t, "Rye bread", it.Name)
}

func TestItemService_ListNewestFirst(t *testing.T) {
	db := newSQLiteDB(t)
	stores := NewStoreService(db, zap.NewNop().Sugar())
	items := NewItemService(db, zap.NewNop().Sugar())
	ctx := context.Background()

	s, err := stores.Create(ctx, StoreCreate{Name: "Market"})
	require.NoError(t, err)
	for _, name := range []string{"first", "second", "third"} {
		_, err := items.Create(ctx, ItemCreate{Name: name, StoreID: s.ID})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	list, err := items.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Name)
	assert.Equal(t, "first", list[2].Name)
	for _, it := range list {
		require.NotNil(t, it.Store)
		assert.Equal(t, "Market", it.Store.Name)
	}
}
