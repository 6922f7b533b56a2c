// Copyright (c) 2026 EventInc. All rights reserved.

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntSlice(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []int
	}{
		{name: "valid numbers", in: []string{"1", "42", "-7"}, want: []int{1, 42, -7}},
		{name: "invalid entries skipped", in: []string{"1", "abc", "3"}, want: []int{1, 3}},
		{name: "empty input", in: nil, want: nil},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, IntSlice(testCase.in))
		})
	}
}

func TestStringSlice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "comma separated", in: "go,conference,remote", want: []string{"go", "conference", "remote"}},
		{name: "whitespace trimmed", in: " go , conference ", want: []string{"go", "conference"}},
		{name: "empty segments dropped", in: "go,,conference,", want: []string{"go", "conference"}},
		{name: "empty string", in: "", want: nil},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, StringSlice(testCase.in))
		})
	}
}
