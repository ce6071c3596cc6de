package announce

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"ronn-bot/internal/roles"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

type fakeSender struct {
	sendErr     error
	reactionErr map[string]error
	sent        []discord.MessageCreate
	reactions   []string
}

func (f *fakeSender) CreateMessage(_ context.Context, channelID snowflake.ID, message discord.MessageCreate) (*discord.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, message)
	return &discord.Message{ID: 555, ChannelID: channelID}, nil
}

func (f *fakeSender) AddReaction(_ context.Context, _ snowflake.ID, _ snowflake.ID, emoji string) error {
	f.reactions = append(f.reactions, emoji)
	return f.reactionErr[emoji]
}

func testBindings() []roles.Binding {
	return []roles.Binding{
		{Key: roles.CustomEmoji{ID: 956543324410507284, Name: "gib", Animated: true}, RoleID: 200},
		{Key: roles.UnicodeEmoji{Glyph: "🦜"}, RoleID: 201},
		{Key: roles.CustomEmoji{ID: 956560593819693087, Name: "pepefingerping"}, RoleID: 202},
	}
}

func newTestPublisher(sender Sender, watched snowflake.ID) (*Publisher, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	publisher := NewPublisher(sender, watched, slog.New(slog.NewTextHandler(buf, nil)))
	publisher.now = func() time.Time { return time.Unix(1700000000, 0) }
	return publisher, buf
}

func TestPublishAttachesReactionsInOrder(t *testing.T) {
	sender := &fakeSender{}
	publisher, logs := newTestPublisher(sender, 42)

	handle, err := publisher.Publish(context.Background(), 42, testBindings())
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if handle.MessageID != 555 || handle.ChannelID != 42 || len(handle.Failed) != 0 {
		t.Fatalf("unexpected handle %+v", handle)
	}

	want := []string{"gib:956543324410507284", "🦜", "pepefingerping:956560593819693087"}
	if strings.Join(sender.reactions, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected reactions %v", sender.reactions)
	}

	if len(sender.sent) != 1 || len(sender.sent[0].Embeds) != 1 {
		t.Fatalf("expected a single embed message")
	}
	embed := sender.sent[0].Embeds[0]
	if embed.Title != Title {
		t.Fatalf("unexpected title %q", embed.Title)
	}
	if !strings.Contains(embed.Description, "<a:gib:956543324410507284> for <@&200>") {
		t.Fatalf("unexpected description %q", embed.Description)
	}
	if strings.Contains(logs.String(), "outside the watched channel") {
		t.Fatalf("did not expect a channel warning")
	}
}

func TestPublishSendFailureSkipsReactions(t *testing.T) {
	sender := &fakeSender{sendErr: errors.New("missing access")}
	publisher, _ := newTestPublisher(sender, 42)

	_, err := publisher.Publish(context.Background(), 42, testBindings())
	var publishErr *PublishError
	if !errors.As(err, &publishErr) || publishErr.Op != "send" {
		t.Fatalf("expected send PublishError, got %v", err)
	}
	if len(sender.reactions) != 0 {
		t.Fatalf("expected no reactions after a failed send, got %v", sender.reactions)
	}
}

func TestPublishContinuesAfterReactionFailure(t *testing.T) {
	sender := &fakeSender{reactionErr: map[string]error{"🦜": errors.New("unknown emoji")}}
	publisher, logs := newTestPublisher(sender, 42)

	handle, err := publisher.Publish(context.Background(), 42, testBindings())
	if err != nil {
		t.Fatalf("partial reaction failure should not fail publish: %v", err)
	}
	if len(sender.reactions) != 3 {
		t.Fatalf("expected all reactions attempted, got %v", sender.reactions)
	}
	if len(handle.Failed) != 1 || !handle.Failed[0].Equal(roles.UnicodeEmoji{Glyph: "🦜"}) {
		t.Fatalf("unexpected failed list %v", handle.Failed)
	}
	if !strings.Contains(logs.String(), "reaction attach failed") {
		t.Fatalf("expected attach failure log")
	}
}

func TestPublishWarnsOutsideWatchedChannel(t *testing.T) {
	sender := &fakeSender{}
	publisher, logs := newTestPublisher(sender, 42)

	if _, err := publisher.Publish(context.Background(), 43, testBindings()); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !strings.Contains(logs.String(), "outside the watched channel") {
		t.Fatalf("expected channel mismatch warning, got %s", logs.String())
	}
}
