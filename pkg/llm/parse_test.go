package llm

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		A int `json:"a"`
	}

	tests := []struct {
		name  string
		input string
		ok    bool
		want  int
	}{
		{
			name:  "plain JSON",
			input: `{"a":1}`,
			ok:    true,
			want:  1,
		},
		{
			name:  "fenced block",
			input: "```json\n{\"a\":1}\n```",
			ok:    true,
			want:  1,
		},
		{
			name:  "surrounding prose",
			input: `garbage {"a":1} trailing`,
			ok:    true,
			want:  1,
		},
		{
			name:  "no json at all",
			input: "no json here",
			ok:    false,
		},
		{
			name:  "empty input",
			input: "",
			ok:    false,
		},
		{
			name:  "unbalanced object",
			input: `prefix {"a":1 suffix`,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			got := decodeJSON(tt.input, &p)
			assert.Equal(t, tt.ok, got)
			if tt.ok {
				assert.Equal(t, tt.want, p.A)
			}
		})
	}
}

func TestDecodeJSONArray(t *testing.T) {
	input := "Here are the articles:\n```json\n[{\"title\":\"T1\",\"url\":\"https://a.example/1\"}]\n```"

	var articles []ScrapedArticle
	ok := decodeJSON(input, &articles)

	assert.Equal(t, true, ok)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "T1", articles[0].Title)
	assert.Equal(t, "https://a.example/1", articles[0].URL)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "object with prose",
			input: `model said {"a":{"b":2}} done`,
			want:  `{"a":{"b":2}}`,
		},
		{
			name:  "array",
			input: `result: [1,2,[3]] end`,
			want:  `[1,2,[3]]`,
		},
		{
			name:  "braces inside strings ignored",
			input: `{"a":"}{"}`,
			want:  `{"a":"}{"}`,
		},
		{
			name:  "nothing to extract",
			input: "plain text",
			want:  "",
		},
		{
			name:  "never closed",
			input: `{"a":1`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.input))
		})
	}
}

func TestCleanResponse(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanResponse("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanResponse("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanResponse("  {\"a\":1}  "))
}
