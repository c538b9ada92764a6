package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```JSON\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
}

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"type":"flight"}`,
			want: `{"type":"flight"}`,
		},
		{
			name: "surrounded by prose",
			in:   `Sure! Here is the result: {"type":"tour"} Hope that helps.`,
			want: `{"type":"tour"}`,
		},
		{
			name: "nested objects",
			in:   `{"a":{"b":{"c":1}},"d":2}`,
			want: `{"a":{"b":{"c":1}},"d":2}`,
		},
		{
			name: "brace inside string",
			in:   `{"note":"use {curly} braces","n":1}`,
			want: `{"note":"use {curly} braces","n":1}`,
		},
		{
			name: "escaped quote inside string",
			in:   `{"note":"she said \"hi\" {","n":1}`,
			want: `{"note":"she said \"hi\" {","n":1}`,
		},
		{
			name: "unterminated object",
			in:   `{"a":1`,
			want: "",
		},
		{
			name: "no object at all",
			in:   "I could not read the image.",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstJSONObject(tt.in))
		})
	}
}
