// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// EventRecord is the serialized form of an Event.
type EventRecord struct {
	Phase    string `json:"phase" toml:"phase"`
	Kind     string `json:"kind" toml:"kind"`
	Value    string `json:"value,omitempty" toml:"value,omitempty"`
	Position string `json:"position,omitempty" toml:"position,omitempty"`
}

type eventRecords struct {
	Events []EventRecord `json:"events" toml:"event"`
}

func NewEventRecords(events []Event) []EventRecord {
	records := []EventRecord{}
	for _, ev := range events {
		record := EventRecord{
			Phase: ev.Phase.String(),
			Kind:  ev.Kind.String(),
			Value: ev.Value,
		}
		if ev.Position.IsKnown() {
			record.Position = ev.Position.AsCompactString()
		}
		records = append(records, record)
	}
	return records
}

// EncodeJSON writes {"events": [...]}.
func EncodeJSON(w io.Writer, events []Event) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(eventRecords{NewEventRecords(events)})
	if err != nil {
		return fmt.Errorf("Encoding events as JSON: %s", err)
	}
	return nil
}

// EncodeTOML writes one [[event]] table per event.
func EncodeTOML(w io.Writer, events []Event) error {
	err := toml.NewEncoder(w).Encode(eventRecords{NewEventRecords(events)})
	if err != nil {
		return fmt.Errorf("Encoding events as TOML: %s", err)
	}
	return nil
}
