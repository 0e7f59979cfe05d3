package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
)

// Detect analyses the posted domain, optionally against a reference domain.
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "v1.Detect")
	defer span.End()

	req, err := readBody(w, r, h.options.MaxBodyBytes, decodeDetectRequest)
	if err != nil {
		fail(ctx, span, w, err)

		return
	}

	report := h.deps.Detector.Detect(ctx, *req.Domain, req.Reference)
	span.SetAttributes(
		attribute.Bool("homoglyph.suspicious", report.IsSuspicious),
		attribute.Int("homoglyph.suspicious_chars", len(report.SuspiciousChars)),
	)

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		EncodeReport(e, report)
	})
}
