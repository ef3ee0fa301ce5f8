package service

import (
	"context"
	"strings"

	"ShoppingList/internal/model"
	"ShoppingList/internal/nullable"
	"ShoppingList/internal/repo"

	"go.uber.org/zap"
)

const itemNotFound = "Item not found"

// ItemCreate: входные данные для новой позиции.
type ItemCreate struct {
	Name       string      `json:"name" validate:"required,max=200"`
	Quantity   *string     `json:"quantity" validate:"omitnil,max=50"`
	StoreID    int64       `json:"store_id" validate:"required,gt=0"`
	NeedByDate *model.Date `json:"need_by_date" validate:"-"`
}

func (in *ItemCreate) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Quantity = trimPtr(in.Quantity)
}

// ItemUpdate: частичное обновление позиции.
// need_by_date: null очищает дату, отсутствие поля оставляет её как есть.
type ItemUpdate struct {
	Name       *string                    `json:"name" validate:"omitnil,min=1,max=200"`
	Quantity   *string                    `json:"quantity" validate:"omitnil,max=50"`
	StoreID    *int64                     `json:"store_id" validate:"omitnil,gt=0"`
	NeedByDate nullable.Field[model.Date] `json:"need_by_date" validate:"-"`
	IsChecked  *bool                      `json:"is_checked"`
}

func (in *ItemUpdate) normalize() {
	in.Name = trimPtr(in.Name)
	in.Quantity = trimPtr(in.Quantity)
}

// changes возвращает только переданные колонки.
func (in ItemUpdate) changes() map[string]any {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Quantity != nil {
		updates["quantity"] = *in.Quantity
	}
	if in.StoreID != nil {
		updates["store_id"] = *in.StoreID
	}
	if in.NeedByDate.Set {
		if in.NeedByDate.Value == nil {
			updates["need_by_date"] = nil
		} else {
			updates["need_by_date"] = *in.NeedByDate.Value
		}
	}
	if in.IsChecked != nil {
		updates["is_checked"] = *in.IsChecked
	}
	return updates
}

// ItemService инкапсулирует бизнес-логику работы с ShoppingItem.
type ItemService struct {
	db     Sessions
	logger *zap.SugaredLogger
}

func NewItemService(db Sessions, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{db: db, logger: logger}
}

// List возвращает все позиции (новые первыми) вместе с магазинами.
func (s *ItemService) List(ctx context.Context) ([]model.ShoppingItem, error) {
	var items []model.ShoppingItem
	err := s.db.WithSession(ctx, func(sess repo.Session) error {
		var err error
		items, err = sess.Items().List(ctx)
		return err
	})
	if err != nil {
		return nil, mapError(err, itemNotFound)
	}
	return items, nil
}

// Create добавляет позицию. Несуществующий магазин: ошибка целостности, строка не создаётся.
func (s *ItemService) Create(ctx context.Context, in ItemCreate) (*model.ShoppingItem, error) {
	in.normalize()
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	it := &model.ShoppingItem{
		Name:       in.Name,
		Quantity:   model.DefaultQuantity,
		StoreID:    in.StoreID,
		NeedByDate: in.NeedByDate,
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}

	var created *model.ShoppingItem
	err := s.db.WithSession(ctx, func(sess repo.Session) error {
		if err := sess.Items().Create(ctx, it); err != nil {
			return err
		}
		var err error
		created, err = sess.Items().GetByID(ctx, it.ID)
		return err
	})
	if err != nil {
		return nil, mapError(err, itemNotFound)
	}
	s.logger.Debugw("item created", "item_id", created.ID, "store_id", created.StoreID)
	return created, nil
}

// Update применяет только поля, присутствующие в in; is_checked переключается здесь же.
func (s *ItemService) Update(ctx context.Context, id int64, in ItemUpdate) (*model.ShoppingItem, error) {
	in.normalize()
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	var updated *model.ShoppingItem
	err := s.db.WithSession(ctx, func(sess repo.Session) error {
		if err := sess.Items().Update(ctx, id, in.changes()); err != nil {
			return err
		}
		var err error
		updated, err = sess.Items().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, mapError(err, itemNotFound)
	}
	return updated, nil
}

// Delete удаляет позицию.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	err := s.db.WithSession(ctx, func(sess repo.Session) error {
		return sess.Items().Delete(ctx, id)
	})
	if err != nil {
		return mapError(err, itemNotFound)
	}
	s.logger.Debugw("item deleted", "item_id", id)
	return nil
}
