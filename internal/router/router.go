// Package router turns reaction events from the watched channel into role grants and revokes.
package router

import (
	"context"
	"log/slog"
	"time"

	"ronn-bot/internal/roles"

	"github.com/disgoorg/snowflake/v2"
)

type Direction int

const (
	DirectionAdd Direction = iota
	DirectionRemove
)

func (d Direction) String() string {
	if d == DirectionRemove {
		return "remove"
	}
	return "add"
}

// MemberInfo is what the router needs to know about the reacting user.
type MemberInfo struct {
	Bot     bool
	Display string
}

type Reaction struct {
	Direction Direction
	GuildID   snowflake.ID
	ChannelID snowflake.ID
	MessageID snowflake.ID
	UserID    snowflake.ID
	Emoji     roles.ReactionKey
	// Member is set when the gateway event already carried member data.
	Member *MemberInfo
}

// Gateway is the subset of the chat platform the router calls.
type Gateway interface {
	LookupMember(ctx context.Context, guildID snowflake.ID, userID snowflake.ID) (MemberInfo, error)
	AddMemberRole(ctx context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error
	RemoveMemberRole(ctx context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error
}

type Outcome string

const (
	OutcomeWrongChannel Outcome = "wrong_channel"
	OutcomeBotUser      Outcome = "bot_user"
	OutcomeUnbound      Outcome = "unbound_emoji"
	OutcomeNoTarget     Outcome = "no_target"
	OutcomeGranted      Outcome = "granted"
	OutcomeRevoked      Outcome = "revoked"
	OutcomeFailed       Outcome = "failed"
)

type Config struct {
	WatchedChannel snowflake.ID
	IgnoreBots     bool
	RequestTimeout time.Duration
}

type Router struct {
	cfg     Config
	table   *roles.Table
	gateway Gateway
	logger  *slog.Logger
}

func New(cfg Config, table *roles.Table, gateway Gateway, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		cfg:     cfg,
		table:   table,
		gateway: gateway,
		logger:  logger,
	}
}

func (r *Router) WatchedChannel() snowflake.ID {
	return r.cfg.WatchedChannel
}

// Route applies the admission rules in order and performs at most one role mutation.
func (r *Router) Route(ctx context.Context, reaction Reaction) Outcome {
	if reaction.ChannelID != r.cfg.WatchedChannel {
		return OutcomeWrongChannel
	}

	member := reaction.Member
	if r.cfg.IgnoreBots {
		if member == nil {
			member = r.lookupMember(ctx, reaction.GuildID, reaction.UserID)
		}
		if member != nil && member.Bot {
			return OutcomeBotUser
		}
	}

	roleID, ok := r.table.Lookup(reaction.Emoji)
	if !ok {
		return OutcomeUnbound
	}

	if reaction.GuildID == 0 || reaction.UserID == 0 {
		return OutcomeNoTarget
	}

	display := "<@" + reaction.UserID.String() + ">"
	if member != nil && member.Display != "" {
		display = member.Display
	}

	callCtx, cancel := r.callContext(ctx)
	defer cancel()

	var err error
	outcome := OutcomeGranted
	if reaction.Direction == DirectionRemove {
		outcome = OutcomeRevoked
		err = r.gateway.RemoveMemberRole(callCtx, reaction.GuildID, reaction.UserID, roleID)
	} else {
		err = r.gateway.AddMemberRole(callCtx, reaction.GuildID, reaction.UserID, roleID)
	}

	attrs := []any{
		slog.String("direction", reaction.Direction.String()),
		slog.String("role_id", roleID.String()),
		slog.String("guild_id", reaction.GuildID.String()),
		slog.String("user_id", reaction.UserID.String()),
		slog.String("member", display),
		slog.String("emoji", reaction.Emoji.String()),
	}
	if err != nil {
		r.logger.Warn("reaction role update failed", append(attrs, slog.Any("err", err))...)
		return OutcomeFailed
	}
	r.logger.Info("reaction role updated", attrs...)
	return outcome
}

// lookupMember returns nil when the lookup fails so the event stays admitted.
func (r *Router) lookupMember(ctx context.Context, guildID snowflake.ID, userID snowflake.ID) *MemberInfo {
	if r.gateway == nil || userID == 0 {
		return nil
	}
	callCtx, cancel := r.callContext(ctx)
	defer cancel()

	info, err := r.gateway.LookupMember(callCtx, guildID, userID)
	if err != nil {
		r.logger.Debug(
			"member lookup failed",
			slog.Any("err", err),
			slog.String("guild_id", guildID.String()),
			slog.String("user_id", userID.String()),
		)
		return nil
	}
	return &info
}

func (r *Router) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.cfg.RequestTimeout)
}
