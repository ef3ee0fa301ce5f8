package service

import (
	"context"
	"strings"

	"ShoppingList/internal/model"
	"ShoppingList/internal/repo"

	"go.uber.org/zap"
)

const storeNotFound = "Store not found"

// StoreCreate: входные данные для создания магазина.
type StoreCreate struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Color *string `json:"color" validate:"omitnil,hexcolor"`
	Icon  *string `json:"icon" validate:"omitnil,min=1,max=16"`
}

func (in *StoreCreate) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Color = trimPtr(in.Color)
	in.Icon = trimPtr(in.Icon)
}

// StoreUpdate: частичное обновление: nil-поля не трогаются.
type StoreUpdate struct {
	Name  *string `json:"name" validate:"omitnil,min=1,max=100"`
	Color *string `json:"color" validate:"omitnil,hexcolor"`
	Icon  *string `json:"icon" validate:"omitnil,min=1,max=16"`
}

func (in *StoreUpdate) normalize() {
	in.Name = trimPtr(in.Name)
	in.Color = trimPtr(in.Color)
	in.Icon = trimPtr(in.Icon)
}

// changes возвращает только переданные колонки.
func (in StoreUpdate) changes() map[string]any {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Color != nil {
		updates["color"] = *in.Color
	}
	if in.Icon != nil {
		updates["icon"] = *in.Icon
	}
	return updates
}

// StoreService инкапсулирует бизнес-логику работы со Store.
type StoreService struct {
	db     Sessions
	logger *zap.SugaredLogger
}

func NewStoreService(db Sessions, logger *zap.SugaredLogger) *StoreService {
	return &StoreService{db: db, logger: logger}
}

// List возвращает все магазины по имени.
func (s *StoreService) List(ctx context.Context) ([]model.Store, error) {
	var stores []model.Store
	err := s.db.WithSession(ctx, func(sess repo.Session) error {
		var err error
		stores, err = sess.Stores().List(ctx)
		return err
	})
	if err != nil {
		return nil, mapError(err, storeNotFound)
	}
	return stores, nil
}

// Create создаёт магазин; незаданные цвет и иконка получают значения по умолчанию.
func (s *StoreService) Create(ctx context.Context, in StoreCreate) (*model.Store, error) {
	in.normalize()
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	st := &model.Store{Name: in.Name, Color: model.DefaultStoreColor, Icon: model.DefaultStoreIcon}
	if in.Color != nil {
		st.Color = *in.Color
	}
	if in.Icon != nil {
		st.Icon = *in.Icon
	}

	var created *model.Store
	err := s.db.WithSession(ctx, func(sess repo.Session) error {
		if err := sess.Stores().Create(ctx, st); err != nil {
			return err
		}
		var err error
		created, err = sess.Stores().GetByID(ctx, st.ID)
		return err
	})
	if err != nil {
		return nil, mapError(err, storeNotFound)
	}
	s.logger.Debugw("store created", "store_id", created.ID)
	return created, nil
}

// Update применяет только поля, присутствующие в in.
func (s *StoreService) Update(ctx context.Context, id int64, in StoreUpdate) (*model.Store, error) {
	in.normalize()
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	var updated *model.Store
	err := s.db.WithSession(ctx, func(sess repo.Session) error {
		if err := sess.Stores().Update(ctx, id, in.changes()); err != nil {
			return err
		}
		var err error
		updated, err = sess.Stores().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, mapError(err, storeNotFound)
	}
	return updated, nil
}

// Delete удаляет магазин вместе со всеми его позициями.
func (s *StoreService) Delete(ctx context.Context, id int64) error {
	err := s.db.WithSession(ctx, func(sess repo.Session) error {
		return sess.Stores().Delete(ctx, id)
	})
	if err != nil {
		return mapError(err, storeNotFound)
	}
	s.logger.Debugw("store deleted", "store_id", id)
	return nil
}
