// Copyright (c) 2026 EventInc. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventinc/api/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Annual Tech Summit 2026", "annual-tech-summit-2026"},
		{"accents", "Café Conférence", "cafe-conference"},
		{"punctuation", "Go: The Good Parts!", "go-the-good-parts"},
		{"collapsed_hyphens", "a  --  b", "a-b"},
		{"trimmed", "  leading and trailing  ", "leading-and-trailing"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}
