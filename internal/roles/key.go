package roles

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/disgoorg/snowflake/v2"
)

var customEmojiPattern = regexp.MustCompile(`^<(a?):([a-zA-Z0-9_]+):([0-9]+)>$`)

var ErrMalformedEmoji = errors.New("malformed emoji")

// ReactionKey identifies an emoji used as a reaction. It is either CustomEmoji or UnicodeEmoji.
type ReactionKey interface {
	// Equal compares identity only: the id of a custom emoji, the glyph of a unicode emoji.
	Equal(other ReactionKey) bool
	// APIName is the form the REST reaction endpoints expect.
	APIName() string
	// String renders the emoji the way it appears in message content.
	String() string

	reactionKey()
}

// CustomEmoji is a guild emoji. Name and Animated are cosmetic.
type CustomEmoji struct {
	ID       snowflake.ID
	Name     string
	Animated bool
}

func (e CustomEmoji) Equal(other ReactionKey) bool {
	switch o := other.(type) {
	case CustomEmoji:
		return e.ID == o.ID
	case *CustomEmoji:
		return o != nil && e.ID == o.ID
	default:
		return false
	}
}

func (e CustomEmoji) APIName() string {
	return fmt.Sprintf("%s:%s", e.displayName(), e.ID)
}

func (e CustomEmoji) String() string {
	prefix := ""
	if e.Animated {
		prefix = "a"
	}
	return fmt.Sprintf("<%s:%s:%s>", prefix, e.displayName(), e.ID)
}

func (e CustomEmoji) displayName() string {
	if e.Name == "" {
		return "_"
	}
	return e.Name
}

func (CustomEmoji) reactionKey() {}

type UnicodeEmoji struct {
	Glyph string
}

func (e UnicodeEmoji) Equal(other ReactionKey) bool {
	switch o := other.(type) {
	case UnicodeEmoji:
		return e.Glyph == o.Glyph
	case *UnicodeEmoji:
		return o != nil && e.Glyph == o.Glyph
	default:
		return false
	}
}

func (e UnicodeEmoji) APIName() string { return e.Glyph }

func (e UnicodeEmoji) String() string { return e.Glyph }

func (UnicodeEmoji) reactionKey() {}

// ParseReactionKey accepts <:name:id>, <a:name:id>, or a bare unicode glyph.
func ParseReactionKey(raw string) (ReactionKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedEmoji)
	}

	if strings.HasPrefix(raw, "<") {
		matches := customEmojiPattern.FindStringSubmatch(raw)
		if len(matches) != 4 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEmoji, raw)
		}
		id, err := snowflake.Parse(matches[3])
		if err != nil || id == 0 {
			return nil, fmt.Errorf("%w: %q has an invalid id", ErrMalformedEmoji, raw)
		}
		return CustomEmoji{ID: id, Name: matches[2], Animated: matches[1] == "a"}, nil
	}

	if strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedEmoji, raw)
	}
	return UnicodeEmoji{Glyph: raw}, nil
}

// KeyFromParts converts the id/name pair carried by gateway reaction events.
func KeyFromParts(id *snowflake.ID, name string, animated bool) (ReactionKey, bool) {
	if id != nil && *id != 0 {
		return CustomEmoji{ID: *id, Name: name, Animated: animated}, true
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	return UnicodeEmoji{Glyph: name}, true
}
