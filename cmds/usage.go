package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil {
			continue
		}
		if slices.Contains(command.Aliases, name) || printed[command] {
			continue
		}
		printed[command] = true

		line := indent + name
		if len(command.Aliases) > 0 {
			line += ", " + strings.Join(command.Aliases, ", ")
		}
		if args := command.argNames(); len(args) > 0 {
			line += " " + strings.Join(args, " ")
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
