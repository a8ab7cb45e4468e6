package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codegauge/codegauge/internal/types"
)

func TestRoutePrecedence(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name string
		req  types.ScanRequest
		want string
	}{
		{
			name: "hint wins over extension",
			req:  types.ScanRequest{Filename: "script.py", LanguageHint: "C++"},
			want: "cpp",
		},
		{
			name: "unknown hint falls through to extension",
			req:  types.ScanRequest{Filename: "script.py", LanguageHint: "cobol"},
			want: "python",
		},
		{
			name: "extension routes directly",
			req:  types.ScanRequest{Filename: "main.go"},
			want: "go",
		},
		{
			name: "extension is case-insensitive",
			req:  types.ScanRequest{Filename: "Main.JAVA"},
			want: "java",
		},
		{
			name: "typescript extension maps to the javascript profile",
			req:  types.ScanRequest{Filename: "app.tsx"},
			want: "javascript",
		},
		{
			name: "content detection when the extension is unknown",
			req: types.ScanRequest{
				Filename: "script",
				Content:  []byte("#!/usr/bin/env python\nimport os\n\nprint(os.getcwd())\n"),
			},
			want: "python",
		},
		{
			name: "generic fallback for unknown everything",
			req:  types.ScanRequest{Filename: "notes.xyz", Content: []byte("plain prose\n")},
			want: "generic",
		},
		{
			name: "generic fallback without content",
			req:  types.ScanRequest{Filename: "notes.xyz"},
			want: "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eng.route(tt.req).ID)
		})
	}
}

func TestNormalizeHint(t *testing.T) {
	tests := []struct {
		hint string
		want string
	}{
		{"C++", "cpp"},
		{"cpp", "cpp"},
		{"c", "cpp"},
		{"golang", "go"},
		{"Go", "go"},
		{"js", "javascript"},
		{"TypeScript", "javascript"},
		{"py", "python"},
		{" Python ", "python"},
		{"java", "java"},
		{"cobol", "cobol"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeHint(tt.hint), "hint %q", tt.hint)
	}
}
