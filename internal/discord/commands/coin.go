package commands

import "github.com/disgoorg/disgo/discord"

const (
	CoinCommandName = "coin"
	CoinOptName     = "coinname"
)

func init() {
	Register(CoinCommand)
}

func CoinCommand() discord.ApplicationCommandCreate {
	return discord.SlashCommandCreate{
		Name:        CoinCommandName,
		Description: "Get the CoinDetails from DexScreener",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        CoinOptName,
				Description: "Token name, symbol or pair address",
				Required:    true,
			},
		},
	}
}
