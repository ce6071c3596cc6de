package discord

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"ronn-bot/internal/announce"
	"ronn-bot/internal/discord/handlers"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/snowflake/v2"
)

type Config struct {
	Token   string
	Intents gateway.Intents
	// WatchedChannel is only used to warn when the announcement is posted elsewhere.
	WatchedChannel snowflake.ID
}

func DefaultConfig() Config {
	return Config{
		Intents: gateway.IntentGuilds |
			gateway.IntentGuildMessages |
			gateway.IntentGuildMessageReactions |
			gateway.IntentMessageContent,
	}
}

type Bot struct {
	client  bot.Client
	gateway *Gateway
	logger  *slog.Logger
}

func New(cfg Config, opts handlers.Options) (*Bot, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("discord token is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
		opts.Logger = logger
	}
	if cfg.Intents == 0 {
		cfg.Intents = DefaultConfig().Intents
	}

	var handler *handlers.Handler
	client, err := disgo.New(cfg.Token,
		bot.WithLogger(logger),
		bot.WithGatewayConfigOpts(gateway.WithIntents(cfg.Intents)),
		bot.WithEventManagerConfigOpts(bot.WithAsyncEventsEnabled()),
		bot.WithEventListenerFunc(func(event *events.Ready) {
			logger.Info("connected as", slog.String("user", event.User.Username))
		}),
		bot.WithEventListenerFunc(func(event *events.GuildMessageReactionAdd) {
			if handler != nil {
				handler.OnGuildMessageReactionAdd(event)
			}
		}),
		bot.WithEventListenerFunc(func(event *events.GuildMessageReactionRemove) {
			if handler != nil {
				handler.OnGuildMessageReactionRemove(event)
			}
		}),
		bot.WithEventListenerFunc(func(event *events.GuildMessageCreate) {
			if handler != nil {
				handler.OnGuildMessageCreate(event)
			}
		}),
		bot.WithEventListenerFunc(func(event *events.ApplicationCommandInteractionCreate) {
			if handler != nil {
				handler.OnApplicationCommand(event)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	restGateway := NewGateway(client)
	if opts.Publisher == nil {
		opts.Publisher = announce.NewPublisher(restGateway, cfg.WatchedChannel, logger)
	}
	handler = handlers.New(client, opts)

	return &Bot{
		client:  client,
		gateway: restGateway,
		logger:  logger,
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	return b.client.OpenGateway(ctx)
}

func (b *Bot) Close(ctx context.Context) {
	b.client.Close(ctx)
	b.logger.Info("discord gateway closed")
}

func (b *Bot) Client() bot.Client {
	return b.client
}

// Gateway exposes the REST adapter used for role changes and messages.
func (b *Bot) Gateway() *Gateway {
	return b.gateway
}
