// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the homoglyph service.
package api

import (
	_ "embed"
	"fmt"
	"homoglyph/internal/api/handler/v1handler"
	"homoglyph/internal/config"
	"homoglyph/pkg/controller"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const timeoutBody = `{"code":"INTERNAL","message":"request timed out"}`

//go:embed specs/v1.yaml
var v1Spec []byte

// Timeouts bound the phases of a connection. Request is enforced by
// http.TimeoutHandler on every route except pprof; the rest go to http.Server.
type Timeouts struct {
	Read       time.Duration
	ReadHeader time.Duration
	Write      time.Duration
	Idle       time.Duration
	Request    time.Duration
}

// Options configures NewServer. NewOptions fills it from config.Config.
type Options struct {
	SecHandlerOptions *v1handler.SecHandlerOptions
	HandlerOptions    v1handler.Options

	Addr           string
	Timeouts       Timeouts
	MaxHeaderBytes int
	// MetricsPath serves Prometheus metrics; empty disables it.
	MetricsPath    string
	AllowedOrigin  string
	EnablePprof    bool

	// Registry receives the HTTP metrics and is served at MetricsPath.
	// prometheus.DefaultRegisterer is used when nil.
	Registry *prometheus.Registry
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		HandlerOptions:    v1handler.NewOptions(cfg),
		Addr:              cfg.HTTP.Addr,
		Timeouts: Timeouts{
			Read:       cfg.HTTP.ReadTimeout,
			ReadHeader: cfg.HTTP.ReadHeaderTimeout,
			Write:      cfg.HTTP.WriteTimeout,
			Idle:       cfg.HTTP.IdleTimeout,
			Request:    cfg.HTTP.RequestTimeout,
		},
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
		MetricsPath:    cfg.HTTP.MetricsPath,
		AllowedOrigin:  cfg.HTTP.AllowedOrigin,
		EnablePprof:    cfg.HTTP.EnablePprof,
	}
}

// Deps are the services behind the routes. A nil Shortener disables the
// shortener routes.
type Deps struct {
	v1handler.Deps
}

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are exported through reg, so they show up next to the HTTP metrics.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewServer builds the http.Server. From the outside in, requests pass CORS,
// access logging, the pprof split, the request timeout and route metrics
// before reaching the mux.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	metricsHandler := promhttp.Handler()
	if opts.Registry != nil {
		registerer = opts.Registry
		metricsHandler = promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{Registry: opts.Registry})
	}

	mux, err := routes(deps, opts, metricsHandler)
	if err != nil {
		return nil, err
	}

	handler := controller.NewHTTPMetrics(registerer).Middleware(mux)
	if opts.Timeouts.Request > 0 {
		handler = http.TimeoutHandler(handler, opts.Timeouts.Request, timeoutBody)
	}
	if opts.EnablePprof {
		split := http.NewServeMux()
		split.Handle(controller.PprofPath, controller.PprofMux())
		split.Handle("/", handler)
		handler = split
	}
	handler = controller.WithCORS(opts.AllowedOrigin)(controller.WithLogger(handler))

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.Timeouts.Read,
		ReadHeaderTimeout: opts.Timeouts.ReadHeader,
		WriteTimeout:      opts.Timeouts.Write,
		IdleTimeout:       opts.Timeouts.Idle,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func routes(deps Deps, opts Options, metricsHandler http.Handler) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	if opts.MetricsPath != "" {
		mux.Handle("GET "+opts.MetricsPath, metricsHandler)
	}
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	mux.Handle("/v1/docs/", v5emb.New("Homoglyph Service", "/specs/v1.yaml", "/v1/docs/"))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1handler.New(deps.Deps, opts.HandlerOptions).Register(mux, secHandler)

	return mux, nil
}
