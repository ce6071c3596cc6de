package actions

import (
	"context"
	"fmt"
	"log/slog"

	"ronn-bot/internal/bus"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

// MessageSender is the REST call the action worker needs.
type MessageSender interface {
	CreateMessage(ctx context.Context, channelID snowflake.ID, message discord.MessageCreate) (*discord.Message, error)
}

// StartActionWorker delivers queued bus actions until ctx is done or the queue is closed.
func StartActionWorker(ctx context.Context, sender MessageSender, eventBus *bus.Bus, logger *slog.Logger) <-chan struct{} {
	done := make(chan struct{})
	if eventBus == nil {
		close(done)
		return done
	}
	if logger == nil {
		logger = slog.Default()
	}

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case action, ok := <-eventBus.DiscordActions:
				if !ok {
					return
				}
				handleAction(ctx, sender, logger, action)
			}
		}
	}()
	return done
}

func handleAction(ctx context.Context, sender MessageSender, logger *slog.Logger, action bus.DiscordAction) {
	switch payload := action.(type) {
	case bus.SendMessage:
		if payload.Content == "" {
			return
		}
		builder := discord.NewMessageCreateBuilder().SetContent(payload.Content)
		if payload.ReplyTo != 0 {
			builder.SetMessageReferenceByID(payload.ReplyTo)
		}
		_, err := sender.CreateMessage(ctx, payload.ChannelID, builder.Build())
		if err != nil {
			logger.Error(
				"discord send message failed",
				slog.Any("err", err),
				slog.String("channel_id", payload.ChannelID.String()),
			)
		}
	default:
		logger.Warn("unknown discord action", slog.String("type", fmt.Sprintf("%T", action)))
	}
}
