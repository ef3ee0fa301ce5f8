package repo

import (
	"context"

	"ShoppingList/internal/model"

	"gorm.io/gorm"
)

// StoreRepository определяет контракт доступа к Store для слоя сервиса.
type StoreRepository interface {
	// List возвращает все магазины по имени (по возрастанию).
	List(ctx context.Context) ([]model.Store, error)

	// GetByID возвращает магазин или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Store, error)

	Create(ctx context.Context, s *model.Store) error

	// Update применяет только переданные колонки и обновляет updated_at.
	// Если записи нет: gorm.ErrRecordNotFound.
	Update(ctx context.Context, id int64, updates map[string]any) error

	// Delete удаляет магазин; его позиции удаляет каскад внешнего ключа.
	Delete(ctx context.Context, id int64) error
}

type storeRepo struct {
	db *gorm.DB
}

// NewStoreRepository создаёт реализацию репозитория для Store.
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepo{db: db}
}

func (r *storeRepo) List(ctx context.Context) ([]model.Store, error) {
	stores := []model.Store{}
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Order("id ASC").
		Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepo) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	var s model.Store
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *storeRepo) Create(ctx context.Context, s *model.Store) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(s).Error; err != nil {
		return err
	}
	// created_at/updated_at назначила БД
	return db.Select("created_at", "updated_at").Take(s, s.ID).Error
}

func (r *storeRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.Store{}).Where("id = ?", id).Updates(withTouch(r.db, updates))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *storeRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Store{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
