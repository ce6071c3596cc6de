package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"ronn-bot/internal/roles"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
)

const (
	emojiCDN = "https://cdn.discordapp.com/emojis/"
	// maxEmojiSize is Discord's upload limit for guild emojis.
	maxEmojiSize = 256 * 1024
)

var (
	errNotCustomEmoji = errors.New("not a custom emoji")
	errEmojiTooLarge  = errors.New("emoji image exceeds 256 KiB")
)

func (h *Handler) handleSteal(event *events.GuildMessageCreate, args []string) {
	if len(args) == 0 {
		h.reply(event.ChannelID, event.MessageID, "Please supply some Emojis")
		return
	}

	for _, token := range args {
		emoji, err := parseStealTarget(token)
		if err != nil {
			h.reply(event.ChannelID, event.MessageID, fmt.Sprintf("Could not add the emoji %s", token))
			continue
		}
		if err := h.copyEmoji(event, emoji); err != nil {
			h.logger.Warn(
				"failed to copy emoji",
				slog.String("guild_id", event.GuildID.String()),
				slog.String("emoji", emoji.String()),
				slog.Any("err", err),
			)
			h.reply(event.ChannelID, event.MessageID, fmt.Sprintf("Could not add the emoji %s", emoji.Name))
			continue
		}
		h.reply(event.ChannelID, event.MessageID, fmt.Sprintf("I have added the emoji %s", emoji.Name))
	}
}

func (h *Handler) copyEmoji(event *events.GuildMessageCreate, emoji roles.CustomEmoji) error {
	ctx, cancel := h.commandContext()
	defer cancel()

	icon, err := h.fetchIcon(ctx, emojiImageURL(emoji))
	if err != nil {
		return err
	}
	_, err = h.client.Rest().CreateEmoji(event.GuildID, discord.EmojiCreate{
		Name:  emoji.Name,
		Image: *icon,
	}, rest.WithCtx(ctx))
	return err
}

func parseStealTarget(token string) (roles.CustomEmoji, error) {
	key, err := roles.ParseReactionKey(token)
	if err != nil {
		return roles.CustomEmoji{}, err
	}
	emoji, ok := key.(roles.CustomEmoji)
	if !ok || emoji.Name == "" {
		return roles.CustomEmoji{}, errNotCustomEmoji
	}
	return emoji, nil
}

func emojiImageURL(emoji roles.CustomEmoji) string {
	ext := ".png"
	if emoji.Animated {
		ext = ".gif"
	}
	return emojiCDN + emoji.ID.String() + ext
}

func (h *Handler) fetchIcon(ctx context.Context, imageURL string) (*discord.Icon, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("image url returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxEmojiSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxEmojiSize {
		return nil, errEmojiTooLarge
	}
	if len(data) == 0 {
		return nil, errors.New("image is empty")
	}

	iconType, ok := detectIconType(resp.Header.Get("Content-Type"), imageURL, data)
	if !ok {
		return nil, errors.New("image must be PNG, JPEG, WEBP, or GIF")
	}
	return discord.NewIconRaw(iconType, data), nil
}

func detectIconType(headerContentType string, imageURL string, data []byte) (discord.IconType, bool) {
	if iconType, ok := iconTypeFromContentType(headerContentType); ok {
		return iconType, true
	}
	if len(data) > 0 {
		if iconType, ok := iconTypeFromContentType(http.DetectContentType(data)); ok {
			return iconType, true
		}
	}
	switch strings.ToLower(path.Ext(imageURL)) {
	case ".png":
		return discord.IconTypePNG, true
	case ".jpg", ".jpeg":
		return discord.IconTypeJPEG, true
	case ".webp":
		return discord.IconTypeWEBP, true
	case ".gif":
		return discord.IconTypeGIF, true
	}
	return "", false
}

func iconTypeFromContentType(contentType string) (discord.IconType, bool) {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return "", false
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType != "" {
		contentType = mediaType
	}
	switch strings.ToLower(contentType) {
	case "image/png":
		return discord.IconTypePNG, true
	case "image/jpeg", "image/jpg":
		return discord.IconTypeJPEG, true
	case "image/webp":
		return discord.IconTypeWEBP, true
	case "image/gif":
		return discord.IconTypeGIF, true
	default:
		return "", false
	}
}
