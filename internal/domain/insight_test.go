package domain

import (
	"errors"
	"strings"
	"testing"
)

func validGenerated() GeneratedInsight {
	return GeneratedInsight{
		InsightText: "x",
		Keywords:    []Keyword{{Keyword: "a", Description: "b"}},
		Context:     "c",
		Question:    "d?",
	}
}

func TestGeneratedInsight_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(g *GeneratedInsight)
		wantErr bool
	}{
		{"valid", func(*GeneratedInsight) {}, false},
		{"missing text", func(g *GeneratedInsight) { g.InsightText = "" }, true},
		{"blank context", func(g *GeneratedInsight) { g.Context = "  " }, true},
		{"missing question", func(g *GeneratedInsight) { g.Question = "" }, true},
		{"empty keywords", func(g *GeneratedInsight) { g.Keywords = []Keyword{} }, true},
		{"nil keywords", func(g *GeneratedInsight) { g.Keywords = nil }, true},
		{"keyword without description", func(g *GeneratedInsight) {
			g.Keywords = append(g.Keywords, Keyword{Keyword: "k"})
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := validGenerated()
			tt.mutate(&g)
			err := g.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestGeneratedInsight_Preview(t *testing.T) {
	t.Parallel()

	g := GeneratedInsight{InsightText: strings.Repeat("가", 120)}
	if got := []rune(g.Preview(100)); len(got) != 100 {
		t.Fatalf("Preview(100) has %d runes", len(got))
	}

	g.InsightText = "short"
	if got := g.Preview(100); got != "short" {
		t.Fatalf("Preview(100) = %q", got)
	}
}

func TestNoteInput_Validate(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("n", MaxNoteLength+1)

	tests := []struct {
		name    string
		in      NoteInput
		wantErr bool
	}{
		{"valid nil content", NoteInput{InsightDate: "2026-02-17", UserID: "u1"}, false},
		{"bad date", NoteInput{InsightDate: "17-02-2026", UserID: "u1"}, true},
		{"missing user", NoteInput{InsightDate: "2026-02-17"}, true},
		{"too long", NoteInput{InsightDate: "2026-02-17", UserID: "u1", Content: &long}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.in.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
