package handlers

import (
	"log/slog"

	"ronn-bot/internal/bus"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
)

func respondEphemeralTone(event *events.ApplicationCommandInteractionCreate, tone EmbedTone, content string) error {
	embed := BuildEmbed(EmbedTemplate{
		Tone:        tone,
		Description: content,
	})
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{embed},
		Flags:  discord.MessageFlagEphemeral,
	})
}

// reply queues a plain text answer to a prefix command. The message is dropped when the queue is full.
func (h *Handler) reply(channelID snowflake.ID, replyTo snowflake.ID, content string) {
	if h.bus == nil || content == "" {
		return
	}
	select {
	case h.bus.DiscordActions <- bus.SendMessage{ChannelID: channelID, Content: content, ReplyTo: replyTo}:
	default:
		h.logger.Warn("discord action queue full, reply dropped", slog.String("channel_id", channelID.String()))
	}
}
