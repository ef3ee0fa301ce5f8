package commands

import (
	"context"
	"fmt"

	"ShoppingList/internal/config"
)

type healthCmd struct{}

func (healthCmd) Name() string        { return "health" }
func (healthCmd) Description() string { return "Проверить доступность сервера" }
func (healthCmd) Usage() string       { return "health" }

func (healthCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	status, err := newClient(cfg).Health(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Status:", status)
	return nil
}

func init() { RegisterCmd(healthCmd{}) }
