package bus

import (
	"github.com/disgoorg/snowflake/v2"
)

const DefaultBuffer = 128

type Bus struct {
	DiscordEvents  chan DiscordEvent
	DiscordActions chan DiscordAction
}

func New(buffer int) *Bus {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	return &Bus{
		DiscordEvents:  make(chan DiscordEvent, buffer),
		DiscordActions: make(chan DiscordAction, buffer),
	}
}

type DiscordEvent interface {
	discordEvent()
}

type DiscordAction interface {
	discordAction()
}

// ReactionMember is the member snapshot some gateway events carry with them.
type ReactionMember struct {
	Bot         bool
	DisplayName string
}

type ReactionAdded struct {
	GuildID       snowflake.ID
	ChannelID     snowflake.ID
	MessageID     snowflake.ID
	UserID        snowflake.ID
	EmojiName     string
	EmojiID       *snowflake.ID
	EmojiAnimated bool
	Member        *ReactionMember
}

func (ReactionAdded) discordEvent() {}

type ReactionRemoved struct {
	GuildID       snowflake.ID
	ChannelID     snowflake.ID
	MessageID     snowflake.ID
	UserID        snowflake.ID
	EmojiName     string
	EmojiID       *snowflake.ID
	EmojiAnimated bool
}

func (ReactionRemoved) discordEvent() {}

type SendMessage struct {
	ChannelID snowflake.ID
	Content   string
	// ReplyTo references the triggering message when set.
	ReplyTo snowflake.ID
}

func (SendMessage) discordAction() {}
