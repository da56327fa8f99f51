// SPDX-License-Identifier: AGPL-3.0-or-later

/*
AutoUI - issue-driven questionnaire automation.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package questionnaire evaluates an issue conversation against a static
// question schema and reports progress through the questionnaire.
package questionnaire

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Question is a single prompt identified by a schema-wide unique key.
type Question struct {
	Key     string   `yaml:"key" json:"key"`
	Ask     string   `yaml:"ask" json:"ask"`
	Options []string `yaml:"options,omitempty" json:"options,omitempty"`
}

// Section groups related questions with shared intro text and links.
type Section struct {
	ID        string     `yaml:"id" json:"id"`
	Title     string     `yaml:"title" json:"title"`
	Intro     string     `yaml:"intro" json:"intro"`
	Links     []string   `yaml:"links" json:"links"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// Schema is the ordered list of sections making up a questionnaire.
type Schema struct {
	Sections []Section `yaml:"sections" json:"sections"`
}

// entry pairs a question with the section that owns it.
type entry struct {
	question Question
	section  *Section
}

// LoadSchema reads a schema document from path. YAML and JSON are both
// accepted since JSON is a subset of YAML.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Source: path, Err: err}
	}
	return ParseSchema(data, path)
}

// ParseSchema decodes and validates a schema document. source is only used
// in error messages.
func ParseSchema(data []byte, source string) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &InputError{Source: source, Err: fmt.Errorf("parsing schema: %w", err)}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks structural invariants: every section has an id, every
// question has a key, and keys are unique across all sections.
func (s *Schema) Validate() error {
	if len(s.Sections) == 0 {
		return &SchemaError{Reason: "schema has no sections"}
	}

	seen := make(map[string]string)
	total := 0
	for i, sec := range s.Sections {
		if strings.TrimSpace(sec.ID) == "" {
			return &SchemaError{Reason: fmt.Sprintf("section at index %d missing id", i)}
		}
		for j, q := range sec.Questions {
			key := strings.TrimSpace(q.Key)
			if key == "" {
				return &SchemaError{Reason: fmt.Sprintf("question %d in section %s missing key", j, sec.ID)}
			}
			// Matching is case-insensitive, so keys must be unique the same way.
			norm := strings.ToLower(key)
			if owner, dup := seen[norm]; dup {
				return &SchemaError{
					Key:    key,
					Reason: fmt.Sprintf("duplicate question key (sections %s and %s)", owner, sec.ID),
				}
			}
			seen[norm] = sec.ID
			total++
		}
	}
	if total == 0 {
		return &SchemaError{Reason: "schema has no questions"}
	}
	return nil
}

// Keys returns every question key in schema order.
func (s *Schema) Keys() []string {
	var keys []string
	for _, sec := range s.Sections {
		for _, q := range sec.Questions {
			keys = append(keys, q.Key)
		}
	}
	return keys
}

// Question looks up a question and its section by key.
func (s *Schema) Question(key string) (Question, *Section, bool) {
	for i := range s.Sections {
		for _, q := range s.Sections[i].Questions {
			if q.Key == key {
				return q, &s.Sections[i], true
			}
		}
	}
	return Question{}, nil, false
}

func (s *Schema) flatten() []entry {
	var out []entry
	for i := range s.Sections {
		sec := &s.Sections[i]
		for _, q := range sec.Questions {
			out = append(out, entry{question: q, section: sec})
		}
	}
	return out
}
