package commands

import (
	"context"
	"fmt"

	"ShoppingList/internal/cli/api"
	"ShoppingList/internal/config"
)

func printStore(s *api.Store) {
	fmt.Fprintf(Out, "  %s %s  (id=%d, color=%s)\n", s.Icon, s.Name, s.ID, s.Color)
}

type storesCmd struct{}

func (storesCmd) Name() string        { return "stores" }
func (storesCmd) Description() string { return "Показать все магазины" }
func (storesCmd) Usage() string       { return "stores" }

func (storesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := newClient(cfg).ListStores(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет магазинов")
		return nil
	}
	for i := range list {
		printStore(&list[i])
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

type storeAddCmd struct{}

func (storeAddCmd) Name() string        { return "store-add" }
func (storeAddCmd) Description() string { return "Добавить магазин" }
func (storeAddCmd) Usage() string       { return "store-add <name> [<color> [<icon>]]" }

func (storeAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 3 || args[0] == "" {
		return ErrUsage
	}
	in := api.StoreCreate{Name: args[0]}
	if len(args) >= 2 {
		in.Color = args[1]
	}
	if len(args) == 3 {
		in.Icon = args[2]
	}
	s, err := newClient(cfg).CreateStore(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printStore(s)
	return nil
}

type storeEditCmd struct{}

func (storeEditCmd) Name() string        { return "store-edit" }
func (storeEditCmd) Description() string { return "Изменить магазин (поля name, color, icon)" }
func (storeEditCmd) Usage() string       { return "store-edit <id> <field=value>..." }

var storeFields = map[string]func(string) (any, error){
	"name":  asString,
	"color": asString,
	"icon":  asString,
}

func (storeEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	fields, err := parseAssignments(args[1:], storeFields)
	if err != nil {
		return err
	}
	s, err := newClient(cfg).UpdateStore(ctx, id, fields)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	printStore(s)
	return nil
}

type storeRmCmd struct{}

func (storeRmCmd) Name() string        { return "store-rm" }
func (storeRmCmd) Description() string { return "Удалить магазин вместе с его позициями" }
func (storeRmCmd) Usage() string       { return "store-rm <id>" }

func (storeRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	msg, err := newClient(cfg).DeleteStore(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, msg)
	return nil
}

func init() {
	RegisterCmd(storesCmd{})
	RegisterCmd(storeAddCmd{})
	RegisterCmd(storeEditCmd{})
	RegisterCmd(storeRmCmd{})
}
