package commands

import (
	"context"
	"fmt"

	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать все записи"
}
func (itemsCmd) Usage() string { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := api.NewClient(cfg.ServerURL).ListItems(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, it := range list {
		fmt.Fprintf(Out, "- %s  name=%s  stock=%s\n", it.ID, nameOrDash(it.Name), stockOrDash(it.Stock))
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
