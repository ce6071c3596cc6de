package handlers

import (
	"ronn-bot/internal/discord/embeds"

	"github.com/disgoorg/disgo/discord"
)

type EmbedTone = embeds.EmbedTone
type EmbedTemplate = embeds.EmbedTemplate

const (
	EmbedInfo    = embeds.EmbedInfo
	EmbedSuccess = embeds.EmbedSuccess
	EmbedDecline = embeds.EmbedDecline
	EmbedError   = embeds.EmbedError
	EmbedWarn    = embeds.EmbedWarn
	EmbedGain    = embeds.EmbedGain
	EmbedLoss    = embeds.EmbedLoss
)

func BuildEmbed(template EmbedTemplate) discord.Embed {
	return embeds.BuildEmbed(template)
}

func EmbedField(name string, value string, inline bool) discord.EmbedField {
	return embeds.Field(name, value, inline)
}
