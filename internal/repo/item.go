package repo

import (
	"context"

	"ShoppingList/internal/model"

	"gorm.io/gorm"
)

// ItemRepository определяет контракт доступа к ShoppingItem.
// Все чтения подтягивают Store одним JOIN-запросом.
type ItemRepository interface {
	// List возвращает все позиции, новые первыми.
	List(ctx context.Context) ([]model.ShoppingItem, error)

	// GetByID возвращает позицию вместе с магазином или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.ShoppingItem, error)

	// Create вставляет позицию. Неизвестный store_id: gorm.ErrForeignKeyViolated.
	Create(ctx context.Context, it *model.ShoppingItem) error

	// Update применяет только переданные колонки и обновляет updated_at.
	Update(ctx context.Context, id int64, updates map[string]any) error

	Delete(ctx context.Context, id int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для ShoppingItem.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) withStore(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Joins("Store")
}

func (r *itemRepo) List(ctx context.Context) ([]model.ShoppingItem, error) {
	items := []model.ShoppingItem{}
	err := r.withStore(ctx).
		Order("shopping_items.created_at DESC").
		Order("shopping_items.id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.ShoppingItem, error) {
	var it model.ShoppingItem
	if err := r.withStore(ctx).Where("shopping_items.id = ?", id).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Create(ctx context.Context, it *model.ShoppingItem) error {
	// Omit: не даём gorm вставлять/обновлять магазин через ассоциацию
	db := r.db.WithContext(ctx)
	if err := db.Omit("Store").Create(it).Error; err != nil {
		return translateError(err)
	}
	return db.Select("created_at", "updated_at").Take(it, it.ID).Error
}

func (r *itemRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.ShoppingItem{}).Where("id = ?", id).Updates(withTouch(r.db, updates))
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShoppingItem{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
