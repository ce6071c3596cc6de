package embeds

import (
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
)

type EmbedTone string

const (
	EmbedInfo    EmbedTone = "info"
	EmbedSuccess EmbedTone = "success"
	EmbedDecline EmbedTone = "decline"
	EmbedError   EmbedTone = "error"
	EmbedWarn    EmbedTone = "warn"
	// EmbedGain and EmbedLoss colour price embeds by the sign of the 24h change.
	EmbedGain EmbedTone = "gain"
	EmbedLoss EmbedTone = "loss"
)

type toneStyle struct {
	color int
	title string
}

var toneStyles = map[EmbedTone]toneStyle{
	EmbedInfo:    {color: 0x3B82F6, title: "Info"},
	EmbedSuccess: {color: 0x22C55E, title: "Success"},
	EmbedDecline: {color: 0xDC2626, title: "Declined"},
	EmbedError:   {color: 0xEF4444, title: "Error"},
	EmbedWarn:    {color: 0xF59E0B, title: "Warning"},
	EmbedGain:    {color: 0x1F8B4C, title: "Price"},
	EmbedLoss:    {color: 0x992D22, title: "Price"},
}

type EmbedTemplate struct {
	Tone        EmbedTone
	Title       string
	URL         string
	Description string
	Fields      []discord.EmbedField
	Footer      string
	Timestamp   *time.Time
}

func styleFor(tone EmbedTone) toneStyle {
	if style, ok := toneStyles[EmbedTone(strings.ToLower(string(tone)))]; ok {
		return style
	}
	return toneStyles[EmbedInfo]
}

// EmbedColor returns a themed color. Defaults to info when tone is empty or unknown.
func EmbedColor(tone EmbedTone) int {
	return styleFor(tone).color
}

// BuildEmbed creates a standardized embed from a template.
func BuildEmbed(template EmbedTemplate) discord.Embed {
	style := styleFor(template.Tone)
	title := strings.TrimSpace(template.Title)
	if title == "" {
		title = style.title
	}

	embed := discord.Embed{
		Title:       title,
		URL:         strings.TrimSpace(template.URL),
		Description: strings.TrimSpace(template.Description),
		Color:       style.color,
	}
	if len(template.Fields) > 0 {
		embed.Fields = template.Fields
	}
	if footer := strings.TrimSpace(template.Footer); footer != "" {
		embed.Footer = &discord.EmbedFooter{Text: footer}
	}
	if template.Timestamp != nil {
		embed.Timestamp = template.Timestamp
	}
	return embed
}

// Field builds an embed field; inline is only set when requested.
func Field(name string, value string, inline bool) discord.EmbedField {
	field := discord.EmbedField{Name: name, Value: value}
	if inline {
		field.Inline = &inline
	}
	return field
}
