// Package generator produces look-alike variants of a domain by swapping
// characters for their homoglyphs.
package generator

import (
	"context"
	"fmt"
	"homoglyph/pkg/glyphtable"
	"homoglyph/pkg/logger"
	"math/rand/v2"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

const (
	meterName = "homoglyph/generator"

	// DefaultMaxResults is the number of variants callers ask for when they
	// have no preference.
	DefaultMaxResults = 20
	// DefaultAttemptFactor bounds random two-position sampling to
	// DefaultAttemptFactor × maxResults draws.
	DefaultAttemptFactor = 50
)

var schemes = []string{"https://", "http://"} //nolint: gochecknoglobals

// Options configure a Generator.
type Options struct {
	// AttemptFactor multiplied by the requested count caps the random draws
	// made after single substitutions are exhausted. Defaults to DefaultAttemptFactor.
	AttemptFactor int
	// Seed makes every call draw the same random sequence when set.
	Seed *uint64
	// MeterProvider receives the generation counters. A no-op provider is used when nil.
	MeterProvider metric.MeterProvider
}

// Generator builds variants from a shared table. It is safe for concurrent
// use: randomness is created per call.
type Generator struct {
	table   *glyphtable.Table
	options Options

	requests metric.Int64Counter
	variants metric.Int64Counter
}

// New creates a Generator reading from table.
func New(table *glyphtable.Table, opts Options) (*Generator, error) {
	if table == nil {
		return nil, fmt.Errorf("generator requires a homoglyph table")
	}
	if opts.AttemptFactor <= 0 {
		opts.AttemptFactor = DefaultAttemptFactor
	}

	mp := opts.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	requests, err := meter.Int64Counter("homoglyph.generations",
		metric.WithDescription("Number of generation requests."))
	if err != nil {
		return nil, fmt.Errorf("could not create generations counter: %w", err)
	}
	variants, err := meter.Int64Counter("homoglyph.generations.variants",
		metric.WithDescription("Number of generated variants."))
	if err != nil {
		return nil, fmt.Errorf("could not create variants counter: %w", err)
	}

	return &Generator{
		table:    table,
		options:  opts,
		requests: requests,
		variants: variants,
	}, nil
}

// Generate returns up to maxResults distinct variants of domain. Each variant
// differs from domain in one or two characters of its main part; the scheme,
// "www." and the public suffix are kept verbatim. The result is empty when
// maxResults is not positive or no character has a look-alike.
func (g *Generator) Generate(ctx context.Context, domain string, maxResults int) []string {
	g.requests.Add(ctx, 1)

	out := make([]string, 0)
	if maxResults <= 0 || domain == "" {
		return out
	}

	prefix, main, suffix := Split(domain)
	label := []rune(main)

	positions := make([]int, 0, len(label))
	for i, r := range label {
		if g.table.HasLookalikes(r) {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return out
	}

	rng := g.newRand()
	seen := make(map[string]struct{}, maxResults)
	add := func(variant []rune) {
		s := prefix + string(variant) + suffix
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	// every single substitution, in random order
	singles := make([][]rune, 0, len(positions))
	for _, pos := range positions {
		for _, l := range g.table.Lookalikes(label[pos]) {
			variant := append([]rune(nil), label...)
			variant[pos] = l
			singles = append(singles, variant)
		}
	}
	rng.Shuffle(len(singles), func(i, j int) {
		singles[i], singles[j] = singles[j], singles[i]
	})
	for _, variant := range singles {
		if len(out) >= maxResults {
			break
		}
		add(variant)
	}

	// top up with two substitutions
	attempts := 0
	if len(positions) >= 2 {
		maxAttempts := g.options.AttemptFactor * maxResults
		for ; len(out) < maxResults && attempts < maxAttempts; attempts++ {
			a := rng.IntN(len(positions))
			b := rng.IntN(len(positions) - 1)
			if b >= a {
				b++
			}

			variant := append([]rune(nil), label...)
			for _, pos := range []int{positions[a], positions[b]} {
				lookalikes := g.table.Lookalikes(label[pos])
				variant[pos] = lookalikes[rng.IntN(len(lookalikes))]
			}
			add(variant)
		}
	}

	logger.Debug(ctx, "generated variants",
		zap.String("domain", domain),
		zap.Int("replaceable", len(positions)),
		zap.Int("singles", len(singles)),
		zap.Int("attempts", attempts),
		zap.Int("variants", len(out)))
	g.variants.Add(ctx, int64(len(out)))

	return out
}

func (g *Generator) newRand() *rand.Rand {
	if g.options.Seed != nil {
		return rand.New(rand.NewPCG(*g.options.Seed, *g.options.Seed)) //nolint: gosec
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec
}

// Split separates domain into the prefix kept verbatim (scheme and "www."),
// the main part open to substitution and the suffix kept verbatim (the public
// suffix with its leading dot, plus any path). Unknown suffixes fall back to
// the last label; a domain without a dot has no suffix.
func Split(domain string) (prefix, main, suffix string) {
	rest := domain
	for _, scheme := range schemes {
		if strings.HasPrefix(rest, scheme) {
			prefix = scheme
			rest = rest[len(scheme):]

			break
		}
	}
	if strings.HasPrefix(rest, "www.") {
		prefix += "www."
		rest = rest[len("www."):]
	}

	var path string
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest, path = rest[:i], rest[i:]
	}

	dot := strings.LastIndexByte(rest, '.')
	if dot < 0 {
		return prefix, rest, path
	}

	ps, _ := publicsuffix.PublicSuffix(rest)
	if ps == rest || !strings.HasSuffix(rest, "."+ps) {
		ps = rest[dot+1:]
	}
	cut := len(rest) - len(ps) - 1

	return prefix, rest[:cut], rest[cut:] + path
}
