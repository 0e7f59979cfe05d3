package v1handler

import (
	"net/http"
	"strings"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
)

// Shorten stores the posted URL under a new short code. The caller, when
// authenticated, becomes the owner.
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "v1.Shorten")
	defer span.End()

	req, err := readBody(w, r, h.options.MaxBodyBytes, decodeShortenRequest)
	if err != nil {
		fail(ctx, span, w, err)

		return
	}

	res, err := h.deps.Shortener.Shorten(ctx, GetUserIDFromContext(ctx), req.URL, req.TTL)
	if err != nil {
		fail(ctx, span, w, err)

		return
	}
	span.SetAttributes(attribute.String("short_url.code", res.Code))

	writeJSON(ctx, w, http.StatusCreated, func(e *jx.Encoder) {
		encodeShortURL(e, res, h.shortenedURL(res.Code))
	})
}

// DeleteShortURL removes a short URL owned by the caller.
func (h *Handler) DeleteShortURL(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "v1.DeleteShortURL")
	defer span.End()

	code := r.PathValue("code")
	span.SetAttributes(attribute.String("short_url.code", code))

	if err := h.deps.Shortener.Delete(ctx, GetUserIDFromContext(ctx), code); err != nil {
		fail(ctx, span, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Redirect sends the client to the URL behind a short code.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Redirect")
	defer span.End()

	code := r.PathValue("code")
	span.SetAttributes(attribute.String("short_url.code", code))

	res, err := h.deps.Shortener.Resolve(ctx, code)
	if err != nil {
		fail(ctx, span, w, err)

		return
	}

	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, res.OriginalURL, http.StatusFound)
}

func (h *Handler) shortenedURL(code string) string {
	return strings.TrimSuffix(h.options.PublicBaseURL, "/") + "/r/" + code
}
