package enrich

import (
	"errors"
	"testing"
)

func TestExtractRoutes(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLen   int
		wantFirst string
		wantErr   error
	}{
		{
			name:      "clean array",
			text:      `[{"operator":"Dar Express","departure":"07:00","price":"TZS 35,000"}]`,
			wantLen:   1,
			wantFirst: "Dar Express",
		},
		{
			name: "array inside prose",
			text: "Here are the routes:\n```json\n" +
				`[{"operator":"Tahmeed Coach"},{"operator":"Sumry Bus","frequency":"Daily service"}]` +
				"\n```\nSafe travels!",
			wantLen:   2,
			wantFirst: "Tahmeed Coach",
		},
		{
			name:      "two arrays falls back to first well-formed",
			text:      `First [{"operator":"Abood Coach"}] and a note [see website]`,
			wantLen:   1,
			wantFirst: "Abood Coach",
		},
		{
			name:      "bracket before the real array",
			text:      `[citation needed] [{"operator":"Royal Coach"}]`,
			wantLen:   1,
			wantFirst: "Royal Coach",
		},
		{
			name:    "empty array",
			text:    `No direct service exists: []`,
			wantLen: 0,
		},
		{
			name:    "no array",
			text:    "I could not find any schedules.",
			wantErr: ErrNoJSONArray,
		},
		{
			name:    "malformed array",
			text:    `[{"operator": "Dar Express",}`,
			wantErr: ErrNoJSONArray,
		},
		{
			name:    "wrong field types",
			text:    `[{"operator": 42}]`,
			wantErr: ErrNoJSONArray,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes, err := ExtractRoutes(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(routes) != tt.wantLen {
				t.Fatalf("Expected %d routes, got %d", tt.wantLen, len(routes))
			}
			if tt.wantLen > 0 && routes[0].Operator != tt.wantFirst {
				t.Errorf("Expected first operator %q, got %q", tt.wantFirst, routes[0].Operator)
			}
		})
	}
}
