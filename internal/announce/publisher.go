// Package announce posts the reaction-role message and seeds it with one reaction per binding.
package announce

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ronn-bot/internal/discord/embeds"
	"ronn-bot/internal/roles"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

const Title = "Reaction Roles"

// Sender is the slice of the REST API the publisher needs.
type Sender interface {
	CreateMessage(ctx context.Context, channelID snowflake.ID, message discord.MessageCreate) (*discord.Message, error)
	AddReaction(ctx context.Context, channelID snowflake.ID, messageID snowflake.ID, emoji string) error
}

type PublishError struct {
	Op        string
	ChannelID snowflake.ID
	Err       error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish reaction roles to %s: %s: %v", e.ChannelID, e.Op, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }

type MessageHandle struct {
	ChannelID snowflake.ID
	MessageID snowflake.ID
	// Failed lists bindings whose reaction could not be attached.
	Failed []roles.ReactionKey
}

type Publisher struct {
	sender         Sender
	watchedChannel snowflake.ID
	logger         *slog.Logger
	now            func() time.Time
}

func NewPublisher(sender Sender, watchedChannel snowflake.ID, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		sender:         sender,
		watchedChannel: watchedChannel,
		logger:         logger,
		now:            time.Now,
	}
}

func (p *Publisher) Publish(ctx context.Context, channelID snowflake.ID, bindings []roles.Binding) (MessageHandle, error) {
	handle := MessageHandle{ChannelID: channelID}

	if channelID != p.watchedChannel {
		p.logger.Warn(
			"reaction roles published outside the watched channel; reactions there will be ignored",
			slog.String("channel_id", channelID.String()),
			slog.String("watched_channel_id", p.watchedChannel.String()),
		)
	}

	message, err := p.sender.CreateMessage(ctx, channelID, discord.MessageCreate{
		Embeds: []discord.Embed{BuildEmbed(bindings, p.now())},
	})
	if err != nil {
		return handle, &PublishError{Op: "send", ChannelID: channelID, Err: err}
	}
	handle.MessageID = message.ID

	for _, binding := range bindings {
		if err := p.sender.AddReaction(ctx, channelID, message.ID, binding.Key.APIName()); err != nil {
			p.logger.Warn(
				"reaction attach failed",
				slog.Any("err", err),
				slog.String("channel_id", channelID.String()),
				slog.String("message_id", message.ID.String()),
				slog.String("emoji", binding.Key.String()),
			)
			handle.Failed = append(handle.Failed, binding.Key)
		}
	}

	p.logger.Info(
		"reaction roles published",
		slog.String("channel_id", channelID.String()),
		slog.String("message_id", message.ID.String()),
		slog.Int("bindings", len(bindings)),
		slog.Int("failed_reactions", len(handle.Failed)),
	)
	return handle, nil
}

// BuildEmbed lists one "<emoji> for <@&role>" line per binding in table order.
func BuildEmbed(bindings []roles.Binding, now time.Time) discord.Embed {
	lines := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		lines = append(lines, fmt.Sprintf("%s for <@&%s>", binding.Key.String(), binding.RoleID))
	}
	description := "React below to pick your roles. Remove the reaction to drop the role."
	if len(lines) > 0 {
		description = strings.Join(lines, "\n")
	}

	return embeds.BuildEmbed(embeds.EmbedTemplate{
		Tone:        embeds.EmbedInfo,
		Title:       Title,
		Description: description,
		Timestamp:   &now,
	})
}
