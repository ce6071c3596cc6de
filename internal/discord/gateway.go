package discord

import (
	"context"
	"sync"

	"ronn-bot/internal/discord/handlers"
	"ronn-bot/internal/router"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// Gateway adapts a disgo client to the narrow interfaces used by the router and the publisher.
type Gateway struct {
	client bot.Client

	botUserCache   map[snowflake.ID]bool
	botUserCacheMu sync.RWMutex
}

func NewGateway(client bot.Client) *Gateway {
	return &Gateway{
		client:       client,
		botUserCache: make(map[snowflake.ID]bool),
	}
}

// LookupMember prefers the member cache, then REST. Users already known to be bots skip both.
func (g *Gateway) LookupMember(ctx context.Context, guildID snowflake.ID, userID snowflake.ID) (router.MemberInfo, error) {
	g.botUserCacheMu.RLock()
	isBot, ok := g.botUserCache[userID]
	g.botUserCacheMu.RUnlock()
	if ok && isBot {
		return router.MemberInfo{Bot: true}, nil
	}

	if member, ok := g.client.Caches().Member(guildID, userID); ok {
		g.cacheBotUser(userID, member.User.Bot)
		return memberInfo(member), nil
	}

	member, err := g.client.Rest().GetMember(guildID, userID, rest.WithCtx(ctx))
	if err != nil {
		return router.MemberInfo{}, err
	}
	g.cacheBotUser(userID, member.User.Bot)
	return memberInfo(*member), nil
}

func (g *Gateway) AddMemberRole(ctx context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error {
	return g.client.Rest().AddMemberRole(guildID, userID, roleID, rest.WithCtx(ctx))
}

func (g *Gateway) RemoveMemberRole(ctx context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error {
	return g.client.Rest().RemoveMemberRole(guildID, userID, roleID, rest.WithCtx(ctx))
}

func (g *Gateway) CreateMessage(ctx context.Context, channelID snowflake.ID, message discord.MessageCreate) (*discord.Message, error) {
	return g.client.Rest().CreateMessage(channelID, message, rest.WithCtx(ctx))
}

func (g *Gateway) AddReaction(ctx context.Context, channelID snowflake.ID, messageID snowflake.ID, emoji string) error {
	return g.client.Rest().AddReaction(channelID, messageID, emoji, rest.WithCtx(ctx))
}

func (g *Gateway) cacheBotUser(userID snowflake.ID, isBot bool) {
	g.botUserCacheMu.Lock()
	g.botUserCache[userID] = isBot
	g.botUserCacheMu.Unlock()
}

func memberInfo(member discord.Member) router.MemberInfo {
	return router.MemberInfo{
		Bot:     member.User.Bot,
		Display: handlers.MemberDisplayName(member),
	}
}
