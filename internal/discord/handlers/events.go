package handlers

import (
	"ronn-bot/internal/bus"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
)

func (h *Handler) OnGuildMessageReactionAdd(event *events.GuildMessageReactionAdd) {
	if h.bus == nil {
		return
	}

	var member *bus.ReactionMember
	if event.Member.User.ID != 0 && event.Member.User.ID == event.UserID {
		member = &bus.ReactionMember{
			Bot:         event.Member.User.Bot,
			DisplayName: MemberDisplayName(event.Member),
		}
	}

	h.bus.DiscordEvents <- bus.ReactionAdded{
		GuildID:       event.GuildID,
		ChannelID:     event.ChannelID,
		MessageID:     event.MessageID,
		UserID:        event.UserID,
		EmojiName:     emojiName(event.Emoji),
		EmojiID:       event.Emoji.ID,
		EmojiAnimated: event.Emoji.Animated,
		Member:        member,
	}
}

func (h *Handler) OnGuildMessageReactionRemove(event *events.GuildMessageReactionRemove) {
	if h.bus == nil {
		return
	}

	h.bus.DiscordEvents <- bus.ReactionRemoved{
		GuildID:       event.GuildID,
		ChannelID:     event.ChannelID,
		MessageID:     event.MessageID,
		UserID:        event.UserID,
		EmojiName:     emojiName(event.Emoji),
		EmojiID:       event.Emoji.ID,
		EmojiAnimated: event.Emoji.Animated,
	}
}

func emojiName(emoji discord.PartialEmoji) string {
	if emoji.Name == nil {
		return ""
	}
	return *emoji.Name
}

// MemberDisplayName prefers the guild nickname, then the global name, then the username.
func MemberDisplayName(member discord.Member) string {
	if member.Nick != nil && *member.Nick != "" {
		return *member.Nick
	}
	if member.User.GlobalName != nil && *member.User.GlobalName != "" {
		return *member.User.GlobalName
	}
	return member.User.Username
}
