package commands

import (
	"context"
	"fmt"

	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/model"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Добавить запись (остаток необязателен)"
}
func (itemAddCmd) Usage() string { return "item-add <name> [<stock>]" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 || args[0] == "" {
		return ErrUsage
	}
	name := args[0]
	patch := model.ItemPatch{Name: &name}
	if len(args) == 2 {
		stock, err := parseStock(args[1])
		if err != nil {
			return ErrUsage
		}
		patch.Stock = &stock
	}

	it, err := api.NewClient(cfg.ServerURL).CreateItem(ctx, patch)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printItem(it)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
