// Package v1handler implements the version 1 HTTP endpoints: homoglyph
// detection and generation, plus the optional URL shortener.
package v1handler

import (
	"context"
	"homoglyph/internal/config"
	"homoglyph/internal/shortener"
	"homoglyph/pkg/domain"
	"homoglyph/pkg/logger"
	"homoglyph/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "homoglyph/v1handler"

// Detector analyses a domain for homoglyphs.
type Detector interface {
	Detect(ctx context.Context, input string, reference string) domain.Report
}

// Generator produces look-alike variants of a domain.
type Generator interface {
	Generate(ctx context.Context, domain string, maxResults int) []string
}

// Deps are the services behind the endpoints.
type Deps struct {
	Detector  Detector
	Generator Generator
	// Shortener is nil when the shortener is disabled; its routes are then
	// not registered.
	Shortener shortener.Shortener
}

// Options tune request handling.
type Options struct {
	// MaxBodyBytes limits JSON request bodies.
	MaxBodyBytes int64
	// DefaultMaxResults is used when a generate request has no max_results.
	DefaultMaxResults int
	// MaxResultsLimit caps max_results.
	MaxResultsLimit int
	// PublicBaseURL prefixes short codes in shortened_url.
	PublicBaseURL string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		DefaultMaxResults: cfg.Generator.DefaultMaxResults,
		MaxResultsLimit:   cfg.Generator.MaxResultsLimit,
		PublicBaseURL:     cfg.HTTP.PublicBaseURL,
	}
}

type Handler struct {
	deps    Deps
	options Options
	tracer  trace.Tracer
}

func New(deps Deps, opts Options) *Handler {
	return &Handler{
		deps:    deps,
		options: opts,
		tracer:  otel.Tracer(tracerName),
	}
}

// Register mounts the v1 routes on mux. sec guards the shortener routes.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("POST /v1/detect", h.Detect)
	mux.HandleFunc("POST /v1/generate", h.Generate)

	if h.deps.Shortener == nil {
		return
	}
	mux.Handle("POST /v1/shorten", sec.Middleware(false)(http.HandlerFunc(h.Shorten)))
	mux.Handle("DELETE /v1/short-urls/{code}", sec.Middleware(true)(http.HandlerFunc(h.DeleteShortURL)))
	mux.HandleFunc("GET /r/{code}", h.Redirect)
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var kindStatus = map[serrors.Kind]struct { //nolint: gochecknoglobals
	status  int
	message string
}{
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrTooLarge:     {http.StatusRequestEntityTooLarge, "payload too large"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
}

// NewError maps err to the reply sent to the client. Semantic errors keep
// their message; anything else is logged and hidden behind a generic 500.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	mapped, ok := kindStatus[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	return &ErrorStatusCode{
		StatusCode: mapped.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: serrors.MessageOf(err, mapped.message),
		},
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := newError(ctx, err)
	writeJSON(ctx, w, res.StatusCode, func(e *jx.Encoder) {
		encodeError(e, res.Response)
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}

// fail records err on span and replies with it.
func fail(ctx context.Context, span trace.Span, w http.ResponseWriter, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	writeError(ctx, w, err)
}
