package handlers

import (
	"testing"

	"ronn-bot/internal/bus"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
)

func reactionAddEvent(userID snowflake.ID, member discord.Member) *events.GuildMessageReactionAdd {
	name := "wave"
	emojiID := snowflake.ID(111)
	return &events.GuildMessageReactionAdd{
		GenericGuildMessageReaction: &events.GenericGuildMessageReaction{
			UserID:    userID,
			ChannelID: 42,
			MessageID: 99,
			GuildID:   1,
			Emoji:     discord.PartialEmoji{ID: &emojiID, Name: &name},
		},
		Member: member,
	}
}

func nextReactionAdded(t *testing.T, eventBus *bus.Bus) bus.ReactionAdded {
	t.Helper()
	select {
	case event := <-eventBus.DiscordEvents:
		added, ok := event.(bus.ReactionAdded)
		if !ok {
			t.Fatalf("expected ReactionAdded, got %T", event)
		}
		return added
	default:
		t.Fatalf("no event was queued")
	}
	return bus.ReactionAdded{}
}

func TestReactionAddCarriesMemberSnapshot(t *testing.T) {
	eventBus := bus.New(1)
	h := New(nil, Options{Bus: eventBus, Logger: quietLogger()})

	nick := "Helper"
	h.OnGuildMessageReactionAdd(reactionAddEvent(5, discord.Member{
		Nick: &nick,
		User: discord.User{ID: 5, Username: "helper", Bot: true},
	}))

	added := nextReactionAdded(t, eventBus)
	if added.Member == nil {
		t.Fatalf("expected member snapshot")
	}
	if !added.Member.Bot || added.Member.DisplayName != "Helper" {
		t.Fatalf("unexpected member %+v", added.Member)
	}
	if added.ChannelID != 42 || added.UserID != 5 || added.EmojiName != "wave" {
		t.Fatalf("unexpected event %+v", added)
	}
	if added.EmojiID == nil || *added.EmojiID != 111 {
		t.Fatalf("expected emoji id 111, got %v", added.EmojiID)
	}
}

func TestReactionAddWithoutMatchingMemberLeavesSnapshotEmpty(t *testing.T) {
	eventBus := bus.New(2)
	h := New(nil, Options{Bus: eventBus, Logger: quietLogger()})

	h.OnGuildMessageReactionAdd(reactionAddEvent(5, discord.Member{}))
	if added := nextReactionAdded(t, eventBus); added.Member != nil {
		t.Fatalf("expected no member for empty member data, got %+v", added.Member)
	}

	h.OnGuildMessageReactionAdd(reactionAddEvent(5, discord.Member{User: discord.User{ID: 6, Bot: true}}))
	if added := nextReactionAdded(t, eventBus); added.Member != nil {
		t.Fatalf("expected no member when the member is someone else, got %+v", added.Member)
	}
}

func TestReactionRemoveQueuesEvent(t *testing.T) {
	eventBus := bus.New(1)
	h := New(nil, Options{Bus: eventBus, Logger: quietLogger()})

	name := "🎉"
	h.OnGuildMessageReactionRemove(&events.GuildMessageReactionRemove{
		GenericGuildMessageReaction: &events.GenericGuildMessageReaction{
			UserID:    5,
			ChannelID: 42,
			GuildID:   1,
			Emoji:     discord.PartialEmoji{Name: &name},
		},
	})

	event := <-eventBus.DiscordEvents
	removed, ok := event.(bus.ReactionRemoved)
	if !ok {
		t.Fatalf("expected ReactionRemoved, got %T", event)
	}
	if removed.EmojiName != "🎉" || removed.EmojiID != nil || removed.UserID != 5 {
		t.Fatalf("unexpected event %+v", removed)
	}
}
