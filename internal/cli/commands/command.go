package commands

import (
	"ItemKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage — команда получила неверные аргументы, нужно показать Usage.
var ErrUsage = errors.New("usage")

// Command — подкоманда клиента ikcli.
type Command interface {
	// Name — имя команды в командной строке, например "items".
	Name() string
	// Description — строка для общей справки.
	Description() string
	// Usage — синтаксис вызова, например "item-get <id>".
	Usage() string
	// Run выполняет команду; args без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out — writer для вывода CLI, в тестах подменяется буфером.
var Out io.Writer = os.Stdout

// RegisterCmd добавляет команду в реестр. Вызывается из init() файла команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get ищет команду по имени.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List возвращает команды, отсортированные по имени.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage собирает общую справку по всем командам.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("ItemKeeper CLI\n\n")
	b.WriteString("Usage:\n")
	b.WriteString("  ikcli [-server <host:port>|URL] <command> [args]\n\n")
	b.WriteString("Server URL is taken from -server or SERVER_URL.\n\n")
	b.WriteString("Commands:\n")
	for _, c := range List() {
		fmt.Fprintf(&b, "  %-40s %s\n", c.Usage(), c.Description())
	}
	return b.String()
}
