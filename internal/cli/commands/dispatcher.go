package commands

import (
	"ItemKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"strings"
)

// Коды выхода клиента.
const (
	exitOK    = 0
	exitError = 1 // сервер или сеть вернули ошибку
	exitUsage = 2 // неверные аргументы или неизвестная команда
)

// Dispatch выполняет команду из args (флаги клиента уже разобраны config.NewConfig)
// и возвращает код выхода процесса.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	switch name {
	case "help", "-h", "--help":
		return printHelp(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	// ikcli item-get --help
	if len(args) == 2 && isHelpFlag(args[1]) {
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitOK
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitUsage
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return exitError
	}
}

// printHelp — общая справка или справка по одной команде.
func printHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	if c, ok := Get(args[0]); ok {
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitOK
	}
	fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
	fmt.Fprint(Out, FormatGlobalUsage())
	return exitUsage
}

func isHelpFlag(s string) bool {
	return s == "-h" || s == "--help" || s == "-help"
}
