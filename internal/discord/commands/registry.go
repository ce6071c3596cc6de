package commands

import "github.com/disgoorg/disgo/discord"

// Builder returns a command definition to register with Discord.
type Builder func() discord.ApplicationCommandCreate

var builders []Builder

// Register adds a command builder. Use one file per command and register in init.
func Register(builder Builder) {
	if builder == nil {
		return
	}
	builders = append(builders, builder)
}

// All returns every registered command in registration order.
func All() []discord.ApplicationCommandCreate {
	commands := make([]discord.ApplicationCommandCreate, 0, len(builders))
	for _, builder := range builders {
		commands = append(commands, builder())
	}
	return commands
}

// Names lists the registered command names, mostly for logging.
func Names() []string {
	names := make([]string, 0, len(builders))
	for _, command := range All() {
		names = append(names, command.CommandName())
	}
	return names
}
