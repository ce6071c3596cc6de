package commands

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/json"
)

const ReactionRolesCommandName = "reactionroles"

func init() {
	Register(ReactionRolesCommand)
}

func ReactionRolesCommand() discord.ApplicationCommandCreate {
	manageRoles := json.NewNullable(discord.PermissionManageRoles)
	return discord.SlashCommandCreate{
		Name:                     ReactionRolesCommandName,
		Description:              "Post the reaction roles message in this channel",
		Contexts:                 []discord.InteractionContextType{discord.InteractionContextTypeGuild},
		DefaultMemberPermissions: &manageRoles,
	}
}
