// Package detector normalizes domain names through a multi stage pipeline and
// reports the characters that had to be rewritten to reach their canonical
// form.
package detector

import (
	"context"
	"fmt"
	"homoglyph/pkg/domain"
	"homoglyph/pkg/glyphtable"
	"homoglyph/pkg/logger"
	"math"
	"strings"

	"github.com/ergochat/confusables"
	"github.com/pmezard/go-difflib/difflib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"golang.org/x/net/idna"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	meterName = "homoglyph/detector"

	acePrefix = "xn--"
	// maxPasses bounds re-normalization. Substitution can expose work for an
	// earlier stage: a Cyrillic "х" turning into an "xn--" label, or a base
	// letter that NFKC then composes with a following combining mark.
	maxPasses = 5
)

// Options configure a Detector.
type Options struct {
	// MeterProvider receives the detection counters. A no-op provider is used when nil.
	MeterProvider metric.MeterProvider
}

// Detector flags domains that only look like their canonical form.
// It is safe for concurrent use.
type Detector struct {
	table *glyphtable.Table

	detections metric.Int64Counter
	suspicious metric.Int64Counter
}

// New creates a Detector reading from table.
func New(table *glyphtable.Table, opts Options) (*Detector, error) {
	if table == nil {
		return nil, fmt.Errorf("detector requires a homoglyph table")
	}

	mp := opts.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	detections, err := meter.Int64Counter("homoglyph.detections",
		metric.WithDescription("Number of analyzed domains."))
	if err != nil {
		return nil, fmt.Errorf("could not create detections counter: %w", err)
	}
	suspicious, err := meter.Int64Counter("homoglyph.detections.suspicious",
		metric.WithDescription("Number of analyzed domains flagged as suspicious."))
	if err != nil {
		return nil, fmt.Errorf("could not create suspicious counter: %w", err)
	}

	return &Detector{
		table:      table,
		detections: detections,
		suspicious: suspicious,
	}, nil
}

// Detect normalizes input and reports how it differs from its canonical form.
//
// With an empty reference the similarity score compares input with its own
// normalized form. Otherwise it compares input with reference and the report
// tells whether input impersonates reference.
func (d *Detector) Detect(ctx context.Context, input string, reference string) domain.Report {
	normalized, chars := d.normalizeFixed(ctx, input)

	report := domain.Report{
		IsSuspicious:     !strings.EqualFold(normalized, input),
		InputDomain:      input,
		NormalizedDomain: normalized,
		SuspiciousChars:  chars,
	}

	compareTo := normalized
	if reference != "" {
		compareTo = reference
		refNormalized := d.Normalize(ctx, reference)
		report.ReferenceDomain = reference
		report.ImpersonatesReference = !strings.EqualFold(input, reference) &&
			(normalized == refNormalized || confusables.Skeleton(input) == confusables.Skeleton(reference))
	}
	report.Similarity = Similarity(input, compareTo)
	report.SimilarityScore = FormatScore(report.Similarity)

	attrs := metric.WithAttributes(attribute.Bool("reference", reference != ""))
	d.detections.Add(ctx, 1, attrs)
	if report.IsSuspicious {
		d.suspicious.Add(ctx, 1, attrs)
	}
	if report.IsSuspicious && logger.IsDebug(ctx) {
		logger.Debug(ctx, "suspicious domain",
			zap.String("input", input),
			zap.String("normalized", normalized),
			zap.Int("chars", len(chars)),
			zap.String("similarity", report.SimilarityScore))
	}

	return report
}

// Normalize returns only the canonical form of input.
func (d *Detector) Normalize(ctx context.Context, input string) string {
	normalized, _ := d.normalizeFixed(ctx, input)

	return normalized
}

// normalizeFixed runs normalize until its output stops changing. The reported
// characters come from the last pass that substituted any, so positions index
// the string that pass rewrote.
func (d *Detector) normalizeFixed(ctx context.Context, input string) (string, []domain.SuspiciousChar) {
	normalized, chars := d.normalize(ctx, input)
	for i := 1; i < maxPasses; i++ {
		next, nextChars := d.normalize(ctx, normalized)
		if next == normalized {
			break
		}
		normalized = next
		if len(nextChars) > 0 {
			chars = nextChars
		}
	}

	return normalized, chars
}

func (d *Detector) normalize(ctx context.Context, input string) (string, []domain.SuspiciousChar) {
	s := depunycode(ctx, input)
	s = fold(ctx, s)

	src := []rune(s)
	out := make([]rune, len(src))
	chars := make([]domain.SuspiciousChar, 0)
	for i, r := range src {
		c := d.table.Canonical(r)
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c

		if c != r {
			chars = append(chars, domain.SuspiciousChar{
				Position:  i,
				Original:  string(r),
				Canonical: string(c),
				CodePoint: CodePoint(r),
			})
		}
	}

	return string(out), chars
}

// depunycode decodes ACE labels. Undecodable input is returned unchanged.
func depunycode(ctx context.Context, s string) string {
	if !hasACELabel(s) {
		return s
	}

	decoded, err := idna.Punycode.ToUnicode(strings.ToLower(s))
	if err != nil {
		logger.Debug(ctx, "could not decode punycode, using input as is",
			zap.String("domain", s), zap.Error(err))

		return s
	}

	return decoded
}

func hasACELabel(s string) bool {
	for label := range strings.SplitSeq(s, ".") {
		if len(label) >= len(acePrefix) && strings.EqualFold(label[:len(acePrefix)], acePrefix) {
			return true
		}
	}

	return false
}

func isInvisible(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\uFEFF', '\u00AD':
		return true
	default:
		return false
	}
}

// fold lower-cases s, applies NFKC and strips invisible characters. The
// second lower-casing catches capitals surfaced by compatibility mapping.
// Casers keep state, so the chain is built per call.
func fold(ctx context.Context, s string) string {
	t := transform.Chain(
		cases.Lower(language.Und),
		norm.NFKC,
		cases.Lower(language.Und),
		runes.Remove(runes.Predicate(isInvisible)),
	)

	out, _, err := transform.String(t, s)
	if err != nil {
		logger.Debug(ctx, "could not fold domain", zap.String("domain", s), zap.Error(err))

		return s
	}

	return out
}

// CodePoint formats r as U+XXXX with at least four upper-case hex digits.
func CodePoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

// Similarity returns the Ratcliff/Obershelp ratio of a and b compared rune by
// rune. Two empty strings are identical.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

// FormatScore renders a ratio as a whole percentage, e.g. 0.8 as "80%".
// Halves round to even, so 0.125 is "12%".
func FormatScore(ratio float64) string {
	return fmt.Sprintf("%d%%", int(math.RoundToEven(ratio*100)))
}
