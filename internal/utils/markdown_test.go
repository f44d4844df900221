package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    []string
		notWant []string
	}{
		{name: "emphasis", source: "**bold** text", want: []string{"<strong>bold</strong>"}},
		{name: "plain paragraph", source: "I find this existence challenging", want: []string{"<p>I find this existence challenging</p>"}},
		{name: "raw script dropped", source: `hi <script>alert("x")</script>`, notWant: []string{"<script"}},
		{name: "external link", source: "[site](https://example.com)", want: []string{`target="_blank"`, "nofollow", "noreferrer"}},
		{name: "javascript link", source: "[x](javascript:alert(1))", notWant: []string{"javascript:"}},
		{name: "hard wraps", source: "one\ntwo", want: []string{"<br"}},
		{name: "gfm table", source: "| a |\n|---|\n| b |", want: []string{"<table>", "<td>b</td>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := string(RenderMarkdown(tt.source))
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}

	assert.Empty(t, RenderMarkdown(""))
}
