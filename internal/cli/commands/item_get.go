package commands

import (
	"context"

	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
)

type itemGetCmd struct{}

func (itemGetCmd) Name() string { return "item-get" }
func (itemGetCmd) Description() string {
	return "Показать запись по id"
}
func (itemGetCmd) Usage() string { return "item-get <id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	it, err := api.NewClient(cfg.ServerURL).GetItem(ctx, args[0])
	if err != nil {
		return err
	}
	printItem(it)
	return nil
}

func init() { RegisterCmd(itemGetCmd{}) }
