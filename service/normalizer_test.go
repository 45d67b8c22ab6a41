package service

import (
	"context"
	"testing"
)

func TestNormalize_Table(t *testing.T) {
	normalizer := NewNormalizer(nil)

	tests := []struct {
		name   string
		raw    string
		want   float64
		wantOK bool
	}{
		{"plain integer", "1200", 1200, true},
		{"decimal", "1200.50", 1200.50, true},
		{"currency and separators", "$1,200.50", 1200.50, true},
		{"surrounding whitespace", "  2500 ", 2500, true},
		{"empty string", "", 0, true},
		{"none", "none", 0, true},
		{"nothing", "Nothing", 0, true},
		{"nil word", "nil", 0, true},
		{"spelled out", "eight", 8, true},
		{"compound tens", "twenty five", 25, true},
		{"hyphenated", "twenty-five", 25, true},
		{"twelve hundred", "twelve hundred", 1200, true},
		{"thousand compound", "one thousand two hundred", 1200, true},
		{"a thousand", "a thousand", 1000, true},
		{"one million", "one million", 1_000_000, true},
		{"mixed digit scale", "2 thousand", 2000, true},
		{"pure symbols strip to empty", "$$$", 0, true},
		{"out of vocabulary", "a gazillion", 0, false},
		{"unparsable phrase", "about yay much", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizer.Normalize(context.Background(), tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Normalize(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalize_NeverPanics(t *testing.T) {
	normalizer := NewNormalizer(nil)
	inputs := []string{"", "$", "$,.", "-", "  -  ", "NaN dollars", "one one hundred thousand thousand"}
	for _, raw := range inputs {
		// Totality: any input resolves to some number.
		got, _ := normalizer.Normalize(context.Background(), raw)
		if got < 0 && raw != "-" {
			t.Errorf("Normalize(%q) returned negative %v", raw, got)
		}
	}
}

func TestNormalize_LayerOrderDirectParseFirst(t *testing.T) {
	wordLayerUsed := false
	spy := func(ctx context.Context, raw string) (float64, bool) {
		wordLayerUsed = true
		return parseNumberWords(ctx, raw)
	}
	normalizer := NewNormalizerWithLayers(parseNumber, spy)

	// Digits must resolve in the direct layer without reaching the words
	// layer.
	if got, ok := normalizer.Normalize(context.Background(), "1200"); got != 1200 || !ok {
		t.Fatalf("unexpected result (%v, %v)", got, ok)
	}
	if wordLayerUsed {
		t.Errorf("word layer consulted for plain numeric input")
	}
}

func TestNormalize_FallsThroughToLaterLayers(t *testing.T) {
	remote := func(_ context.Context, raw string) (float64, bool) {
		if raw == "like three grand i think" {
			return 3000, true
		}
		return 0, false
	}
	normalizer := NewNormalizerWithLayers(parseNumber, parseNumberWords, remote)

	got, ok := normalizer.Normalize(context.Background(), "like three grand I think")
	if got != 3000 || !ok {
		t.Errorf("expected remote layer to resolve, got (%v, %v)", got, ok)
	}
}

func TestInterpreter_DisabledWithoutKey(t *testing.T) {
	interpreter := NewNumberInterpreter("", "")
	if interpreter.Enabled() {
		t.Fatal("interpreter must be disabled without an API key")
	}
	if _, ok := interpreter.ParseNumber(context.Background(), "three grand"); ok {
		t.Error("disabled interpreter must not resolve anything")
	}
}
