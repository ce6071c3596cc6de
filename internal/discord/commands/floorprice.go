package commands

import "github.com/disgoorg/disgo/discord"

const (
	FloorPriceCommandName = "floorprice"
	FloorPriceOptProject  = "project"
	FloorPriceOptVerbose  = "verbose"
)

func init() {
	Register(FloorPriceCommand)
}

func FloorPriceCommand() discord.ApplicationCommandCreate {
	return discord.SlashCommandCreate{
		Name:        FloorPriceCommandName,
		Description: "Get a Floor Price of a Collection",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        FloorPriceOptProject,
				Description: "String Name of the Collection",
				Required:    true,
			},
			discord.ApplicationCommandOptionBool{
				Name:        FloorPriceOptVerbose,
				Description: "List every matching collection instead of the first",
			},
		},
	}
}
