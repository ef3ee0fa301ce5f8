package commands

import (
	"context"
	"fmt"
	"sort"

	"ShoppingList/internal/cli/api"
	"ShoppingList/internal/config"
)

func printItem(it *api.Item) {
	mark := "[ ]"
	if it.IsChecked {
		mark = "[x]"
	}
	line := fmt.Sprintf("    %s %s × %s  (id=%d)", mark, it.Name, it.Quantity, it.ID)
	if it.NeedByDate != nil {
		line += "  need by " + *it.NeedByDate
	}
	fmt.Fprintln(Out, line)
}

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать список покупок по магазинам (опционально только один магазин)"
}
func (itemsCmd) Usage() string { return "items [<store_id>]" }

// Run печатает некупленные позиции, сгруппированные по магазинам, и отдельно купленные.
func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	var storeFilter int64
	if len(args) == 1 {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		storeFilter = id
	}

	list, err := newClient(cfg).ListItems(ctx)
	if err != nil {
		return err
	}

	type group struct {
		store *api.Store
		items []api.Item
	}
	groups := map[int64]*group{}
	var checked []api.Item
	toBuy := 0
	for _, it := range list {
		if storeFilter != 0 && it.StoreID != storeFilter {
			continue
		}
		if it.IsChecked {
			checked = append(checked, it)
			continue
		}
		g, ok := groups[it.StoreID]
		if !ok {
			g = &group{store: it.Store}
			groups[it.StoreID] = g
		}
		g.items = append(g.items, it)
		toBuy++
	}

	if toBuy == 0 && len(checked) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}

	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		g := groups[id]
		title := fmt.Sprintf("store #%d", id)
		if g.store != nil {
			title = g.store.Icon + " " + g.store.Name
		}
		fmt.Fprintf(Out, "%s (%d)\n", title, len(g.items))
		for i := range g.items {
			printItem(&g.items[i])
		}
	}
	if len(checked) > 0 {
		fmt.Fprintf(Out, "✓ Completed (%d)\n", len(checked))
		for i := range checked {
			printItem(&checked[i])
		}
	}
	fmt.Fprintf(Out, "Купить: %d\n", toBuy)
	return nil
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Добавить позицию в список" }
func (itemAddCmd) Usage() string {
	return "item-add <store_id> <name> [<quantity> [<YYYY-MM-DD>]]"
}

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 4 || args[1] == "" {
		return ErrUsage
	}
	storeID, err := parseID(args[0])
	if err != nil {
		return err
	}
	in := api.ItemCreate{StoreID: storeID, Name: args[1]}
	if len(args) >= 3 {
		in.Quantity = args[2]
	}
	if len(args) == 4 {
		if in.NeedByDate, err = parseDate(args[3]); err != nil {
			return err
		}
	}
	it, err := newClient(cfg).CreateItem(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printItem(it)
	return nil
}

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "item-edit" }
func (itemEditCmd) Description() string {
	return "Изменить позицию (поля name, quantity, store, need_by, checked; need_by=none очищает дату)"
}
func (itemEditCmd) Usage() string { return "item-edit <id> <field=value>..." }

var itemFields = map[string]func(string) (any, error){
	"name":     asString,
	"quantity": asString,
	"store":    asID,
	"need_by":  asOptionalDate,
	"checked":  asBool,
}

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	fields, err := parseAssignments(args[1:], itemFields)
	if err != nil {
		return err
	}
	it, err := newClient(cfg).UpdateItem(ctx, id, fields)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	printItem(it)
	return nil
}

// itemCheckCmd отмечает позицию купленной (checked=true) или возвращает её в список.
type itemCheckCmd struct {
	name    string
	checked bool
}

func (c itemCheckCmd) Name() string { return c.name }
func (c itemCheckCmd) Description() string {
	if c.checked {
		return "Отметить позицию купленной"
	}
	return "Вернуть позицию в список"
}
func (c itemCheckCmd) Usage() string { return c.name + " <id>" }

func (c itemCheckCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	it, err := newClient(cfg).UpdateItem(ctx, id, api.Fields{"is_checked": c.checked})
	if err != nil {
		return err
	}
	printItem(it)
	return nil
}

type itemRmCmd struct{}

func (itemRmCmd) Name() string        { return "item-rm" }
func (itemRmCmd) Description() string { return "Удалить позицию" }
func (itemRmCmd) Usage() string       { return "item-rm <id>" }

func (itemRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	msg, err := newClient(cfg).DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, msg)
	return nil
}

func init() {
	RegisterCmd(itemsCmd{})
	RegisterCmd(itemAddCmd{})
	RegisterCmd(itemEditCmd{})
	RegisterCmd(itemCheckCmd{name: "item-check", checked: true})
	RegisterCmd(itemCheckCmd{name: "item-uncheck", checked: false})
	RegisterCmd(itemRmCmd{})
}
