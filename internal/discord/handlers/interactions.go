package handlers

import (
	"log/slog"
	"strings"

	"ronn-bot/internal/discord/commands"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
)

// maxContentLength is the message content limit enforced by Discord.
const maxContentLength = 2000

func (h *Handler) OnApplicationCommand(event *events.ApplicationCommandInteractionCreate) {
	if event.ApplicationCommandInteraction.Data.Type() != discord.ApplicationCommandTypeSlash {
		return
	}

	data := event.SlashCommandInteractionData()
	switch data.CommandName() {
	case commands.FloorPriceCommandName:
		h.handleFloorPrice(event, data)
	case commands.CoinCommandName:
		h.handleCoin(event, data)
	case commands.ReactionRolesCommandName:
		h.handleReactionRolesCommand(event)
	default:
		_ = respondEphemeralTone(event, EmbedWarn, "Unknown command.")
	}
}

func (h *Handler) handleFloorPrice(event *events.ApplicationCommandInteractionCreate, data discord.SlashCommandInteractionData) {
	project, _ := data.OptString(commands.FloorPriceOptProject)
	verbose, _ := data.OptBool(commands.FloorPriceOptVerbose)
	project = strings.TrimSpace(project)
	if project == "" {
		_ = respondEphemeralTone(event, EmbedWarn, "Project is required.")
		return
	}
	if h.floorPrices == nil {
		_ = respondEphemeralTone(event, EmbedError, "Floor prices are not available.")
		return
	}

	if err := event.DeferCreateMessage(false); err != nil {
		h.logger.Error("failed to defer floorprice", slog.Any("err", err))
		return
	}

	ctx, cancel := h.commandContext()
	defer cancel()
	content := truncateContent(h.floorPrices.Run(ctx, project, verbose))
	h.updateResponse(event, discord.MessageUpdate{Content: &content})
}

func (h *Handler) handleCoin(event *events.ApplicationCommandInteractionCreate, data discord.SlashCommandInteractionData) {
	query, _ := data.OptString(commands.CoinOptName)
	query = strings.TrimSpace(query)
	if query == "" {
		_ = respondEphemeralTone(event, EmbedWarn, "Coin name is required.")
		return
	}
	if h.tokens == nil {
		_ = respondEphemeralTone(event, EmbedError, "Token prices are not available.")
		return
	}

	if err := event.DeferCreateMessage(false); err != nil {
		h.logger.Error("failed to defer coin", slog.Any("err", err))
		return
	}

	ctx, cancel := h.commandContext()
	defer cancel()
	pair, err := h.tokens.Search(ctx, query)
	if err != nil {
		h.logger.Warn("token lookup failed", slog.String("query", query), slog.Any("err", err))
		content := coinErrorMessage(err, query, h.operator)
		h.updateResponse(event, discord.MessageUpdate{Content: &content})
		return
	}

	embedList := []discord.Embed{CoinEmbed(pair)}
	h.updateResponse(event, discord.MessageUpdate{Embeds: &embedList})
}

func (h *Handler) handleReactionRolesCommand(event *events.ApplicationCommandInteractionCreate) {
	if event.GuildID() == nil {
		_ = respondEphemeralTone(event, EmbedDecline, "This command can only be used in a server.")
		return
	}
	if h.publisher == nil {
		_ = respondEphemeralTone(event, EmbedError, "Reaction roles are not configured.")
		return
	}

	if err := event.DeferCreateMessage(true); err != nil {
		h.logger.Error("failed to defer reactionroles", slog.Any("err", err))
		return
	}

	ctx, cancel := h.commandContext()
	defer cancel()
	handle, err := h.publisher.Publish(ctx, event.ChannelID(), h.bindings())
	if err != nil {
		h.logger.Error("failed to publish reaction roles", slog.Any("err", err))
		h.updateResponseTone(event, EmbedError, "Could not post the reaction roles message.")
		return
	}
	if len(handle.Failed) > 0 {
		h.updateResponseTone(event, EmbedWarn, "Reaction roles posted, but some reactions could not be added.")
		return
	}
	h.updateResponseTone(event, EmbedSuccess, "Reaction roles posted.")
}

func (h *Handler) updateResponse(event *events.ApplicationCommandInteractionCreate, update discord.MessageUpdate) {
	_, err := event.Client().Rest().UpdateInteractionResponse(event.ApplicationID(), event.Token(), update)
	if err != nil {
		h.logger.Error(
			"failed to update interaction response",
			slog.String("command", event.Data.CommandName()),
			slog.Any("err", err),
		)
	}
}

func (h *Handler) updateResponseTone(event *events.ApplicationCommandInteractionCreate, tone EmbedTone, content string) {
	embedList := []discord.Embed{BuildEmbed(EmbedTemplate{Tone: tone, Description: content})}
	h.updateResponse(event, discord.MessageUpdate{Embeds: &embedList})
}

func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= maxContentLength {
		return content
	}
	return string(runes[:maxContentLength])
}
