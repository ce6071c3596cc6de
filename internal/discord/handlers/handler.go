package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ronn-bot/internal/announce"
	"ronn-bot/internal/bus"
	"ronn-bot/internal/pricing"
	"ronn-bot/internal/roles"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/snowflake/v2"
)

const (
	DefaultPrefix         = "!"
	DefaultCommandTimeout = 15 * time.Second
)

type FloorPricer interface {
	Run(ctx context.Context, name string, verbose bool) string
}

type TokenSearcher interface {
	Search(ctx context.Context, query string) (pricing.Pair, error)
}

type Announcer interface {
	Publish(ctx context.Context, channelID snowflake.ID, bindings []roles.Binding) (announce.MessageHandle, error)
}

type Options struct {
	Bus         *bus.Bus
	Logger      *slog.Logger
	Table       *roles.Table
	Publisher   Announcer
	FloorPrices FloorPricer
	Tokens      TokenSearcher
	// Prefix starts legacy text commands such as !reactionroles.
	Prefix   string
	Operator string
	// CommandTimeout bounds the work done for a single command.
	CommandTimeout time.Duration
	// HTTPClient downloads emoji images for !steal.
	HTTPClient *http.Client
}

type Handler struct {
	client bot.Client
	bus    *bus.Bus
	logger *slog.Logger

	table       *roles.Table
	publisher   Announcer
	floorPrices FloorPricer
	tokens      TokenSearcher

	prefix         string
	operator       string
	commandTimeout time.Duration
	httpClient     *http.Client
}

func New(client bot.Client, opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	prefix := strings.TrimSpace(opts.Prefix)
	if prefix == "" {
		prefix = DefaultPrefix
	}
	timeout := opts.CommandTimeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Handler{
		client:         client,
		bus:            opts.Bus,
		logger:         logger,
		table:          opts.Table,
		publisher:      opts.Publisher,
		floorPrices:    opts.FloorPrices,
		tokens:         opts.Tokens,
		prefix:         prefix,
		operator:       opts.Operator,
		commandTimeout: timeout,
		httpClient:     httpClient,
	}
}

func (h *Handler) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), h.commandTimeout)
}

func (h *Handler) bindings() []roles.Binding {
	if h.table == nil {
		return nil
	}
	return h.table.Bindings()
}
