package v1handler

import (
	"homoglyph/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
)

// Generate returns look-alike variants of the posted domain. max_results
// defaults to Options.DefaultMaxResults and is capped at Options.MaxResultsLimit.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "v1.Generate")
	defer span.End()

	req, err := readBody(w, r, h.options.MaxBodyBytes, decodeGenerateRequest)
	if err != nil {
		fail(ctx, span, w, err)

		return
	}

	maxResults := h.options.DefaultMaxResults
	if req.MaxResults != nil {
		maxResults = *req.MaxResults
	}
	if maxResults < 0 {
		fail(ctx, span, w, serrors.With(serrors.ErrBadRequest, `"max_results" must not be negative`))

		return
	}
	if h.options.MaxResultsLimit > 0 && maxResults > h.options.MaxResultsLimit {
		maxResults = h.options.MaxResultsLimit
	}

	variants := h.deps.Generator.Generate(ctx, *req.Domain, maxResults)
	span.SetAttributes(
		attribute.Int("homoglyph.max_results", maxResults),
		attribute.Int("homoglyph.variants", len(variants)),
	)

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		EncodeGenerated(e, variants)
	})
}
