package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/model"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "item-edit" }
func (itemEditCmd) Description() string {
	return "Изменить поля записи: не указанные поля остаются прежними"
}
func (itemEditCmd) Usage() string {
	return "item-edit <id> [-name <name>] [-stock <stock>]"
}

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	// id может стоять как до, так и после флагов
	var id string
	if !strings.HasPrefix(args[0], "-") {
		id, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet("item-edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "новое название")
	stock := fs.String("stock", "", "новый остаток")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	switch {
	case id == "" && len(rest) == 1:
		id = rest[0]
	case id == "" || len(rest) != 0:
		return ErrUsage
	}

	var patch model.ItemPatch
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "stock":
			v, err := parseStock(*stock)
			if err != nil {
				parseErr = err
				return
			}
			patch.Stock = &v
		}
	})
	if parseErr != nil || patch.Empty() {
		return ErrUsage
	}

	it, err := api.NewClient(cfg.ServerURL).UpdateItem(ctx, id, patch)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	printItem(it)
	return nil
}

func init() { RegisterCmd(itemEditCmd{}) }
