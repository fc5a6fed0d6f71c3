package schema

import (
	"encoding/json"
	"time"
)

// ConsoleData is the raw console-sourced metadata for a command, captured
// verbatim by the offline pipeline. A nil DefaultValue means the console
// reported no default, which classifies the command as an action.
type ConsoleData struct {
	DefaultValue *string   `json:"defaultValue"`
	Flags        []string  `json:"flags"`
	Description  string    `json:"description"`
	SourcedAt    time.Time `json:"sourcedAt"`
}

// HasFlag reports whether the console flags include name.
func (c ConsoleData) HasFlag(name string) bool {
	for _, f := range c.Flags {
		if f == name {
			return true
		}
	}
	return false
}

// CommandDefinition pairs a command name with its console metadata and the
// TypeDescriptor that governs its values. Definitions are created once at
// schema load and immutable thereafter.
type CommandDefinition struct {
	Command string
	Console ConsoleData
	Type    TypeDescriptor
}

// commandJSON is the wire shape of a CommandDefinition.
type commandJSON struct {
	Command string          `json:"command"`
	Console ConsoleData     `json:"consoleData"`
	Type    json.RawMessage `json:"typeDescriptor"`
}

// UnmarshalJSON decodes the definition, dispatching the typeDescriptor
// object through the polymorphic decoder.
func (d *CommandDefinition) UnmarshalJSON(data []byte) error {
	var raw commandJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Reason: err.Error()}
	}
	if raw.Command == "" {
		return &DecodeError{Field: "command", Reason: "missing or empty"}
	}
	if len(raw.Type) == 0 {
		return &DecodeError{Field: "typeDescriptor", Reason: "missing"}
	}
	desc, err := DecodeDescriptor(raw.Type)
	if err != nil {
		return err
	}
	d.Command = raw.Command
	d.Console = raw.Console
	d.Type = desc
	return nil
}

// MarshalJSON is the structural mirror of UnmarshalJSON.
func (d CommandDefinition) MarshalJSON() ([]byte, error) {
	encoded, err := EncodeDescriptor(d.Type)
	if err != nil {
		return nil, err
	}
	return json.Marshal(commandJSON{
		Command: d.Command,
		Console: d.Console,
		Type:    encoded,
	})
}

// DefaultValue computes the seed value for the command: the console default
// coerced through the descriptor when possible, else the kind default.
func (d CommandDefinition) DefaultValue() any {
	if d.Console.DefaultValue != nil {
		if v, err := d.Type.Coerce(*d.Console.DefaultValue); err == nil {
			return v
		}
	}
	return d.Type.Default()
}
