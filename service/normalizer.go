package service

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"
)

// ParseLayer attempts one interpretation of a cleaned amount string. ok
// reports whether the layer resolved it.
type ParseLayer func(ctx context.Context, raw string) (float64, bool)

// Normalizer converts freeform user input, typed or transcribed speech, into
// a clean numeric amount through an ordered chain of layers.
type Normalizer struct {
	layers []ParseLayer
}

// NewNormalizer builds the default chain: direct numeric parse first, then
// spelled-out words, then the remote interpreter when one is configured.
func NewNormalizer(interpreter *NumberInterpreter) *Normalizer {
	layers := []ParseLayer{parseNumber, parseNumberWords}
	if interpreter != nil && interpreter.Enabled() {
		layers = append(layers, interpreter.ParseNumber)
	}
	return &Normalizer{layers: layers}
}

// NewNormalizerWithLayers builds a chain from explicit layers, used by tests
// to swap strategies in and out.
func NewNormalizerWithLayers(layers ...ParseLayer) *Normalizer {
	return &Normalizer{layers: layers}
}

// Normalize resolves raw into an amount. It is total: input that survives no
// layer resolves to 0 with ok=false, and a warning is logged so the caller
// can surface it. It never fails or blocks the interaction.
func (n *Normalizer) Normalize(ctx context.Context, raw string) (float64, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	switch cleaned {
	case "", "none", "nothing", "nil":
		return 0, true
	}

	for _, layer := range n.layers {
		if value, ok := layer(ctx, cleaned); ok {
			return value, true
		}
	}

	log.Printf("Warning: could not parse %q, defaulting to 0", raw)
	return 0, false
}

// parseNumber handles plain numerics like "1200" and "1200.50". NaN and
// infinities are rejected so "nan" falls through like any other word.
func parseNumber(_ context.Context, s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

var numberWords = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var scaleWords = map[string]float64{
	"hundred":  100,
	"thousand": 1_000,
	"million":  1_000_000,
	"billion":  1_000_000_000,
}

// parseNumberWords handles spelled-out numbers and compound phrases like
// "one thousand two hundred" or "twelve hundred". Mixed forms such as
// "2 thousand" also resolve. Any out-of-vocabulary token fails the layer.
func parseNumberWords(_ context.Context, s string) (float64, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-'
	})
	if len(fields) == 0 {
		return 0, false
	}

	var total, current float64
	seen := false
	for _, word := range fields {
		switch {
		case word == "and":
			continue
		case word == "a", word == "an":
			// "a thousand"
			if current == 0 {
				current = 1
			}
		default:
			if v, ok := numberWords[word]; ok {
				current += v
				seen = true
				continue
			}
			if scale, ok := scaleWords[word]; ok {
				if current == 0 {
					current = 1
				}
				if scale == 100 {
					current *= scale
				} else {
					total += current * scale
					current = 0
				}
				seen = true
				continue
			}
			if v, err := strconv.ParseFloat(word, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
				current += v
				seen = true
				continue
			}
			return 0, false
		}
	}

	if !seen {
		return 0, false
	}
	return total + current, true
}
