package handlers

import (
	"log/slog"
	"strings"

	"github.com/disgoorg/disgo/events"
)

const (
	prefixReactionRoles = "reactionroles"
	prefixSteal         = "steal"
)

func (h *Handler) OnGuildMessageCreate(event *events.GuildMessageCreate) {
	if event.Message.Author.Bot {
		return
	}

	name, args, ok := parsePrefixCommand(h.prefix, event.Message.Content)
	if !ok {
		return
	}

	switch name {
	case prefixReactionRoles:
		h.handleReactionRolesPrefix(event)
	case prefixSteal:
		h.handleSteal(event, args)
	default:
		h.logger.Debug("could not find command", slog.String("command", name))
	}
}

// parsePrefixCommand splits "<prefix>name arg..." into a lowercased name and its arguments.
func parsePrefixCommand(prefix string, content string) (string, []string, bool) {
	content = strings.TrimSpace(content)
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

func (h *Handler) handleReactionRolesPrefix(event *events.GuildMessageCreate) {
	if h.publisher == nil {
		h.logger.Warn("reaction roles requested but no publisher is configured")
		return
	}

	ctx, cancel := h.commandContext()
	defer cancel()
	if _, err := h.publisher.Publish(ctx, event.ChannelID, h.bindings()); err != nil {
		h.logger.Error("failed to publish reaction roles", slog.Any("err", err))
		h.reply(event.ChannelID, event.MessageID, "Could not post the reaction roles message.")
	}
}
