// Package state implements the config-state engine: the mutable table of
// per-command settings seeded from CommandDefinitions, validated mutation,
// change notification, and the .cfg round-trip in generate.go and parse.go.
package state

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cfgsmith/cfgsmith/internal/schema"
)

// ErrUnknownCommand is returned when an operation names a command absent
// from the loaded schema.
var ErrUnknownCommand = fmt.Errorf("unknown command")

// Setting is the mutable per-session record for one command: its current
// typed value and whether it is included in generated output.
type Setting struct {
	Value    any
	Included bool
}

// Definition binds a loaded CommandDefinition to the scope of the schema
// file it came from.
type Definition struct {
	schema.CommandDefinition
	Scope schema.Scope
}

// ChangeType classifies a state-changed notification.
type ChangeType int

const (
	// ChangeValue indicates a setting's value was replaced.
	ChangeValue ChangeType = iota

	// ChangeInclusion indicates a setting's inclusion flag was toggled.
	ChangeInclusion

	// ChangeReload indicates the whole table was rebuilt or bulk-updated.
	ChangeReload
)

// Change is delivered to observers after a mutation completes. Source is
// the originator token supplied by the caller so UI components can suppress
// feedback loops from their own writes.
type Change struct {
	Command string
	Type    ChangeType
	Source  string
}

// Observer is called synchronously for every change.
type Observer func(Change)

// Subscription represents an active observer registration.
type Subscription struct {
	id     uint64
	engine *ConfigState
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.engine != nil {
		s.engine.unsubscribe(s.id)
	}
}

// ConfigState owns the Setting table for one loaded schema. Construction is
// explicit; there is no ambient schema access. All operations serialize on
// the internal mutex, and notifications fire after the mutation completes,
// outside the lock.
type ConfigState struct {
	mu sync.RWMutex

	defs     []Definition
	byName   map[string]int
	settings map[string]*Setting

	observers map[uint64]Observer
	nextID    uint64

	log zerolog.Logger
}

// Option configures a ConfigState.
type Option func(*ConfigState)

// WithLogger sets the logger used for parse reporting.
func WithLogger(log zerolog.Logger) Option {
	return func(cs *ConfigState) {
		cs.log = log
	}
}

// New creates a ConfigState over the given definitions, in schema-declared
// order, and seeds the Setting table with defaults. Later duplicates of a
// command name are dropped.
func New(defs []Definition, opts ...Option) *ConfigState {
	cs := &ConfigState{
		byName:    make(map[string]int, len(defs)),
		settings:  make(map[string]*Setting, len(defs)),
		observers: make(map[uint64]Observer),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cs)
	}

	for _, def := range defs {
		if _, dup := cs.byName[def.Command]; dup {
			cs.log.Warn().Str("command", def.Command).Msg("duplicate command definition dropped")
			continue
		}
		cs.byName[def.Command] = len(cs.defs)
		cs.defs = append(cs.defs, def)
	}

	cs.InitializeDefaults()
	return cs
}

// InitializeDefaults rebuilds the Setting table: every command gets its
// console default coerced through its descriptor (or the kind default), and
// inclusion reset to false. One batched reload notification is emitted at
// the end, never one per setting.
func (cs *ConfigState) InitializeDefaults() {
	cs.mu.Lock()
	cs.settings = make(map[string]*Setting, len(cs.defs))
	for _, def := range cs.defs {
		cs.settings[def.Command] = &Setting{
			Value:    def.DefaultValue(),
			Included: false,
		}
	}
	cs.mu.Unlock()

	cs.notify(Change{Type: ChangeReload})
}

// ResetToDefaults re-seeds the table from the retained definitions. No
// schema re-fetch is required.
func (cs *ConfigState) ResetToDefaults() {
	cs.InitializeDefaults()
}

// GetSetting returns a copy of the current Setting for command.
func (cs *ConfigState) GetSetting(command string) (Setting, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	s, ok := cs.settings[command]
	if !ok {
		return Setting{}, false
	}
	return *s, true
}

// SettingView is one row of the ordered read-only view.
type SettingView struct {
	Command string
	Scope   schema.Scope
	Kind    schema.ValueKind
	Def     schema.CommandDefinition
	Setting
}

// Settings returns the full table as an ordered read-only view, in
// schema-declared order.
func (cs *ConfigState) Settings() []SettingView {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	views := make([]SettingView, 0, len(cs.defs))
	for _, def := range cs.defs {
		s := cs.settings[def.Command]
		views = append(views, SettingView{
			Command: def.Command,
			Scope:   def.Scope,
			Kind:    def.Type.Kind(),
			Def:     def.CommandDefinition,
			Setting: *s,
		})
	}
	return views
}

// Definition returns the loaded definition for command.
func (cs *ConfigState) Definition(command string) (Definition, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	idx, ok := cs.byName[command]
	if !ok {
		return Definition{}, false
	}
	return cs.defs[idx], true
}

// Len returns the number of loaded commands.
func (cs *ConfigState) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.defs)
}

// SetValue coerces value through the command's descriptor and replaces the
// stored value. Returns ErrUnknownCommand if the command is not loaded.
func (cs *ConfigState) SetValue(command string, value any, source string) error {
	cs.mu.Lock()
	idx, ok := cs.byName[command]
	if !ok {
		cs.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
	coerced, err := cs.defs[idx].Type.Coerce(value)
	if err != nil {
		cs.mu.Unlock()
		return fmt.Errorf("set %s: %w", command, err)
	}
	cs.settings[command].Value = coerced
	cs.mu.Unlock()

	cs.notify(Change{Command: command, Type: ChangeValue, Source: source})
	return nil
}

// TrySetValueFromString parses raw through the command's descriptor, then
// validates the result. This path is driven by free-text user input, so it
// reports failures as structured messages and never panics: the return is
// (true, "") on success or (false, message) on any failure, including an
// unknown command.
func (cs *ConfigState) TrySetValueFromString(command, raw, source string) (bool, string) {
	cs.mu.Lock()
	idx, ok := cs.byName[command]
	if !ok {
		cs.mu.Unlock()
		return false, fmt.Sprintf("unknown command %q", command)
	}
	desc := cs.defs[idx].Type

	value, err := desc.ParseString(raw)
	if err != nil {
		cs.mu.Unlock()
		return false, err.Error()
	}
	if err := desc.Validate(value); err != nil {
		cs.mu.Unlock()
		return false, err.Error()
	}
	cs.settings[command].Value = value
	cs.mu.Unlock()

	cs.notify(Change{Command: command, Type: ChangeValue, Source: source})
	return true, ""
}

// SetIncluded toggles the inclusion flag. An unknown command is a no-op but
// still notifies, so bulk operations over arbitrary name lists never fail.
func (cs *ConfigState) SetIncluded(command string, included bool, source string) {
	cs.mu.Lock()
	if s, ok := cs.settings[command]; ok {
		s.Included = included
	}
	cs.mu.Unlock()

	cs.notify(Change{Command: command, Type: ChangeInclusion, Source: source})
}

// Subscribe registers an observer for all state changes.
func (cs *ConfigState) Subscribe(obs Observer) *Subscription {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	id := cs.nextID
	cs.nextID++
	cs.observers[id] = obs
	return &Subscription{id: id, engine: cs}
}

func (cs *ConfigState) unsubscribe(id uint64) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.observers, id)
}

// notify delivers a change to all observers outside the lock. Delivery is
// synchronous and re-entrant safe: an observer may call back into the
// engine.
func (cs *ConfigState) notify(change Change) {
	cs.mu.RLock()
	observers := make([]Observer, 0, len(cs.observers))
	for _, obs := range cs.observers {
		observers = append(observers, obs)
	}
	cs.mu.RUnlock()

	for _, obs := range observers {
		obs(change)
	}
}
