package v1handler

import (
	"errors"
	"fmt"
	"homoglyph/pkg/domain"
	"homoglyph/pkg/serrors"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/jx"
)

type detectRequest struct {
	Domain    *string
	Reference string
}

type generateRequest struct {
	Domain     *string
	MaxResults *int
}

type shortenRequest struct {
	URL string
	TTL time.Duration
}

// readBody reads at most limit bytes of the request body and hands it to a
// decoder. The body must hold exactly one JSON object.
func readBody[T any](w http.ResponseWriter, r *http.Request, limit int64, decode func(d *jx.Decoder) (T, error)) (T, error) {
	var zero T

	body := r.Body
	if limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return zero, serrors.Wrap(serrors.ErrTooLarge, err, "request body exceeds %d bytes", tooLarge.Limit)
		}

		return zero, fmt.Errorf("could not read request body: %w", err)
	}

	d := jx.DecodeBytes(raw)
	if d.Next() != jx.Object {
		return zero, serrors.With(serrors.ErrBadRequest, "Invalid JSON format in request body")
	}
	req, err := decode(d)
	if err != nil {
		var semantic *serrors.Error
		if errors.As(err, &semantic) {
			return zero, err
		}

		return zero, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid JSON format in request body")
	}
	if d.Next() != jx.Invalid {
		return zero, serrors.With(serrors.ErrBadRequest, "Invalid JSON format in request body")
	}

	return req, nil
}

// optionalString decodes a string field; null leaves it unset.
func optionalString(d *jx.Decoder, key string) (*string, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null() //nolint: wrapcheck
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return nil, err //nolint: wrapcheck
		}

		return &s, nil
	default:
		if err := d.Skip(); err != nil {
			return nil, err //nolint: wrapcheck
		}

		return nil, serrors.With(serrors.ErrBadRequest, "%q must be a string", key)
	}
}

func decodeDetectRequest(d *jx.Decoder) (detectRequest, error) {
	var req detectRequest
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "domain":
			s, err := optionalString(d, key)
			req.Domain = s

			return err
		case "reference":
			s, err := optionalString(d, key)
			if s != nil {
				req.Reference = *s
			}

			return err
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return req, err //nolint: wrapcheck
	}
	if req.Domain == nil {
		return req, serrors.With(serrors.ErrBadRequest, `Missing "domain" key in request body`)
	}

	return req, nil
}

func decodeGenerateRequest(d *jx.Decoder) (generateRequest, error) {
	var req generateRequest
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "domain":
			s, err := optionalString(d, key)
			req.Domain = s

			return err
		case "max_results":
			switch d.Next() {
			case jx.Null:
				return d.Null()
			case jx.Number:
				n, err := d.Int()
				if err != nil {
					return serrors.Wrap(serrors.ErrBadRequest, err, `"max_results" must be an integer`)
				}
				req.MaxResults = &n

				return nil
			default:
				if err := d.Skip(); err != nil {
					return err //nolint: wrapcheck
				}

				return serrors.With(serrors.ErrBadRequest, `"max_results" must be an integer`)
			}
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return req, err //nolint: wrapcheck
	}
	if req.Domain == nil {
		return req, serrors.With(serrors.ErrBadRequest, `Missing "domain" key in request body`)
	}

	return req, nil
}

func decodeShortenRequest(d *jx.Decoder) (shortenRequest, error) {
	var req shortenRequest
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "url":
			s, err := optionalString(d, key)
			if s != nil {
				req.URL = *s
			}

			return err
		case "ttl":
			s, err := optionalString(d, key)
			if err != nil || s == nil || *s == "" {
				return err
			}
			ttl, err := time.ParseDuration(*s)
			if err != nil {
				return serrors.Wrap(serrors.ErrBadRequest, err, `"ttl" must be a duration such as "24h"`)
			}
			req.TTL = ttl

			return nil
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return req, err //nolint: wrapcheck
	}
	if req.URL == "" {
		return req, serrors.With(serrors.ErrBadRequest, `Missing "url" key in request body`)
	}

	return req, nil
}

func encodeError(e *jx.Encoder, res ErrorResponse) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(res.Code)
	e.FieldStart("message")
	e.Str(res.Message)
	e.ObjEnd()
}

// EncodeReport writes r as the detection response object.
func EncodeReport(e *jx.Encoder, r domain.Report) {
	e.ObjStart()
	e.FieldStart("is_suspicious")
	e.Bool(r.IsSuspicious)
	e.FieldStart("input_domain")
	e.Str(r.InputDomain)
	e.FieldStart("normalized_domain")
	e.Str(r.NormalizedDomain)
	e.FieldStart("similarity_score")
	e.Str(r.SimilarityScore)

	e.FieldStart("suspicious_chars")
	e.ArrStart()
	for _, c := range r.SuspiciousChars {
		e.ObjStart()
		e.FieldStart("position")
		e.Int(c.Position)
		e.FieldStart("original")
		e.Str(c.Original)
		e.FieldStart("canonical")
		e.Str(c.Canonical)
		e.FieldStart("codepoint")
		e.Str(c.CodePoint)
		e.ObjEnd()
	}
	e.ArrEnd()

	if r.ReferenceDomain != "" {
		e.FieldStart("reference_domain")
		e.Str(r.ReferenceDomain)
		e.FieldStart("impersonates_reference")
		e.Bool(r.ImpersonatesReference)
	}
	e.ObjEnd()
}

// EncodeGenerated writes the generation response object.
func EncodeGenerated(e *jx.Encoder, variants []string) {
	e.ObjStart()
	e.FieldStart("generated_domains")
	e.ArrStart()
	for _, v := range variants {
		e.Str(v)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeShortURL(e *jx.Encoder, s *domain.ShortURL, shortened string) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(s.Code)
	e.FieldStart("original_url")
	e.Str(s.OriginalURL)
	e.FieldStart("shortened_url")
	e.Str(shortened)
	if !s.CreatedAt.IsZero() {
		e.FieldStart("created_at")
		e.Str(s.CreatedAt.UTC().Format(time.RFC3339))
	}
	if !s.ExpiresAt.IsZero() {
		e.FieldStart("expires_at")
		e.Str(s.ExpiresAt.UTC().Format(time.RFC3339))
	}
	e.ObjEnd()
}
