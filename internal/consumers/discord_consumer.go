package consumers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"ronn-bot/internal/bus"
	"ronn-bot/internal/roles"
	"ronn-bot/internal/router"
)

// Router is satisfied by *router.Router.
type Router interface {
	Route(ctx context.Context, reaction router.Reaction) router.Outcome
}

type DiscordConsumer struct {
	bus     *bus.Bus
	router  Router
	logger  *slog.Logger
	workers int

	wg sync.WaitGroup
}

// StartDiscordConsumer drains reaction events with the given number of workers.
// Each worker finishes its current event after ctx is cancelled; queued events are dropped.
func StartDiscordConsumer(ctx context.Context, eventBus *bus.Bus, reactionRouter Router, logger *slog.Logger, workers int) *DiscordConsumer {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 1
	}

	consumer := &DiscordConsumer{
		bus:     eventBus,
		router:  reactionRouter,
		logger:  logger,
		workers: workers,
	}
	if eventBus == nil {
		return consumer
	}

	for i := 0; i < workers; i++ {
		consumer.wg.Add(1)
		go consumer.run(ctx)
	}
	return consumer
}

// Wait blocks until every worker has returned.
func (c *DiscordConsumer) Wait() {
	c.wg.Wait()
}

func (c *DiscordConsumer) run(ctx context.Context) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-c.bus.DiscordEvents:
			if !ok {
				return
			}
			c.handle(event)
		}
	}
}

func (c *DiscordConsumer) handle(event bus.DiscordEvent) {
	reaction, ok := c.toReaction(event)
	if !ok {
		return
	}
	if c.router == nil {
		return
	}

	// In-flight role changes are not cancelled on shutdown.
	outcome := c.router.Route(context.Background(), reaction)
	c.logger.Debug(
		"reaction routed",
		slog.String("direction", reaction.Direction.String()),
		slog.String("channel_id", reaction.ChannelID.String()),
		slog.String("message_id", reaction.MessageID.String()),
		slog.String("outcome", string(outcome)),
	)
}

func (c *DiscordConsumer) toReaction(event bus.DiscordEvent) (router.Reaction, bool) {
	switch payload := event.(type) {
	case bus.ReactionAdded:
		key, ok := roles.KeyFromParts(payload.EmojiID, payload.EmojiName, payload.EmojiAnimated)
		if !ok {
			return router.Reaction{}, false
		}
		reaction := router.Reaction{
			Direction: router.DirectionAdd,
			GuildID:   payload.GuildID,
			ChannelID: payload.ChannelID,
			MessageID: payload.MessageID,
			UserID:    payload.UserID,
			Emoji:     key,
		}
		if payload.Member != nil {
			reaction.Member = &router.MemberInfo{Bot: payload.Member.Bot, Display: payload.Member.DisplayName}
		}
		return reaction, true
	case bus.ReactionRemoved:
		key, ok := roles.KeyFromParts(payload.EmojiID, payload.EmojiName, payload.EmojiAnimated)
		if !ok {
			return router.Reaction{}, false
		}
		return router.Reaction{
			Direction: router.DirectionRemove,
			GuildID:   payload.GuildID,
			ChannelID: payload.ChannelID,
			MessageID: payload.MessageID,
			UserID:    payload.UserID,
			Emoji:     key,
		}, true
	default:
		c.logger.Warn("unknown discord event", slog.String("type", fmt.Sprintf("%T", event)))
		return router.Reaction{}, false
	}
}
