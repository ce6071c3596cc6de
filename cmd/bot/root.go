package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ronn-bot/internal/bus"
	"ronn-bot/internal/config"
	"ronn-bot/internal/consumers"
	discordbridge "ronn-bot/internal/discord"
	discordactions "ronn-bot/internal/discord/actions"
	"ronn-bot/internal/discord/commands"
	"ronn-bot/internal/discord/handlers"
	"ronn-bot/internal/pricing"
	"ronn-bot/internal/roles"
	"ronn-bot/internal/router"

	"github.com/disgoorg/snowflake/v2"
	"github.com/spf13/cobra"
)

const (
	appName         = "ronn-bot"
	shutdownTimeout = 10 * time.Second
)

type rootOptions struct {
	configPath string
	envFile    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Reaction roles and price lookups for Discord",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to the config file")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "optional dotenv file with secrets")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newCheckCmd(opts))
	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runBot(cmd *cobra.Command, opts *rootOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.debug)
	slog.SetDefault(logger)

	cfg, err := readConfig(opts.configPath, logger)
	if err != nil {
		return err
	}
	secrets, err := config.LoadSecrets(opts.envFile)
	if err != nil {
		return err
	}
	table, err := roles.Build(cfg.ReactionRoles)
	if err != nil {
		return err
	}
	devGuildID, err := devGuild(cfg.Dev)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watchedChannel := snowflake.ID(cfg.ReactionRoles.ChannelID)
	eventBus := bus.New(bus.DefaultBuffer)

	botConfig := discordbridge.DefaultConfig()
	botConfig.Token = secrets.DiscordToken
	botConfig.WatchedChannel = watchedChannel

	discordBot, err := discordbridge.New(botConfig, handlers.Options{
		Bus:    eventBus,
		Logger: logger,
		Table:  table,
		FloorPrices: pricing.NewFloorPriceClient(pricing.FloorPriceConfig{
			BaseURL:  cfg.APIs.ReservoirURL,
			APIKey:   secrets.ReservoirAPIKey,
			Operator: cfg.Commands.Operator,
			Timeout:  cfg.APIs.Timeout,
		}, logger),
		Tokens: pricing.NewTokenPriceClient(pricing.TokenPriceConfig{
			BaseURL: cfg.APIs.DexScreenerURL,
			Timeout: cfg.APIs.Timeout,
		}, logger),
		Prefix:   cfg.Commands.Prefix,
		Operator: cfg.Commands.Operator,
	})
	if err != nil {
		return fmt.Errorf("create discord client: %w", err)
	}

	reactionRouter := router.New(router.Config{
		WatchedChannel: watchedChannel,
		IgnoreBots:     cfg.ReactionRoles.ShouldIgnoreBots(),
		RequestTimeout: cfg.Discord.RequestTimeout,
	}, table, discordBot.Gateway(), logger)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	consumer := consumers.StartDiscordConsumer(workerCtx, eventBus, reactionRouter, logger, cfg.Discord.Workers)
	actionsDone := discordactions.StartActionWorker(workerCtx, discordBot.Gateway(), eventBus, logger)

	if err := discordBot.Start(ctx); err != nil {
		cancelWorkers()
		return fmt.Errorf("open gateway: %w", err)
	}
	if err := commands.RegisterCommands(discordBot.Client(), logger, devGuildID); err != nil {
		logger.Error("command registration failed", slog.Any("err", err))
	}

	logger.Info(
		"bot running",
		slog.Int("bindings", table.Len()),
		slog.String("watched_channel_id", reactionRouter.WatchedChannel().String()),
		slog.Int("workers", cfg.Discord.Workers),
	)

	<-ctx.Done()
	logger.Info("shutting down")

	closeCtx, cancelClose := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelClose()
	discordBot.Close(closeCtx)

	cancelWorkers()
	consumer.Wait()
	<-actionsDone
	return nil
}

func devGuild(dev config.DevConfig) (*snowflake.ID, error) {
	if !dev.Enabled {
		return nil, nil
	}
	if dev.GuildID == "" {
		return nil, errors.New("dev.guild_id missing from config")
	}
	parsed, err := snowflake.Parse(dev.GuildID)
	if err != nil {
		return nil, fmt.Errorf("dev.guild_id invalid: %w", err)
	}
	return &parsed, nil
}
