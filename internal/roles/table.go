package roles

import (
	"errors"
	"fmt"

	"ronn-bot/internal/config"

	"github.com/disgoorg/snowflake/v2"
)

var ErrBindingCount = errors.New("emotes and role_ids differ in length")

// ConfigError is fatal at startup.
type ConfigError struct {
	Index int
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("reaction roles config: %v", e.Err)
	}
	return fmt.Sprintf("reaction roles config: emote %d: %v", e.Index, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

type Binding struct {
	Key    ReactionKey
	RoleID snowflake.ID
}

// Table is read-only once built.
type Table struct {
	bindings []Binding
}

func Build(cfg config.ReactionRolesConfig) (*Table, error) {
	if len(cfg.Emotes) != len(cfg.RoleIDs) {
		return nil, &ConfigError{
			Index: -1,
			Err:   fmt.Errorf("%w (%d emotes, %d role ids)", ErrBindingCount, len(cfg.Emotes), len(cfg.RoleIDs)),
		}
	}

	bindings := make([]Binding, 0, len(cfg.Emotes))
	for i, raw := range cfg.Emotes {
		key, err := ParseReactionKey(raw)
		if err != nil {
			return nil, &ConfigError{Index: i, Err: err}
		}
		if cfg.RoleIDs[i] == 0 {
			return nil, &ConfigError{Index: i, Err: errors.New("role id is zero")}
		}
		bindings = append(bindings, Binding{Key: key, RoleID: snowflake.ID(cfg.RoleIDs[i])})
	}

	return NewTable(bindings...), nil
}

// NewTable keeps bindings in the given order.
func NewTable(bindings ...Binding) *Table {
	return &Table{bindings: append([]Binding(nil), bindings...)}
}

// Lookup returns the role of the first binding whose key equals key.
func (t *Table) Lookup(key ReactionKey) (snowflake.ID, bool) {
	if t == nil || key == nil {
		return 0, false
	}
	for _, binding := range t.bindings {
		if binding.Key.Equal(key) {
			return binding.RoleID, true
		}
	}
	return 0, false
}

func (t *Table) Bindings() []Binding {
	if t == nil {
		return nil
	}
	return append([]Binding(nil), t.bindings...)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.bindings)
}
