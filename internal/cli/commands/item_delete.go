package commands

import (
	"context"
	"fmt"

	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
)

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string { return "item-delete" }
func (itemDeleteCmd) Description() string {
	return "Удалить запись по id"
}
func (itemDeleteCmd) Usage() string { return "item-delete <id>" }

func (itemDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	msg, err := api.NewClient(cfg.ServerURL).DeleteItem(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, msg)
	return nil
}

func init() { RegisterCmd(itemDeleteCmd{}) }
