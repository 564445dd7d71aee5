// Package engine ties the registry, configuration, and the per-call
// services together behind the five entry points the builder layer consumes:
// Get, Validate, Suggest, Score, and Build. The engine holds no per-document
// state; every call is a pure function over the immutable registry and the
// caller's document, so an Engine is safe for concurrent use.
package engine

import (
	"log/slog"

	"github.com/metaforge/profilekit/buildmode"
	"github.com/metaforge/profilekit/config"
	"github.com/metaforge/profilekit/document"
	"github.com/metaforge/profilekit/profile"
	"github.com/metaforge/profilekit/sanitize"
	"github.com/metaforge/profilekit/score"
	"github.com/metaforge/profilekit/suggest"
	"github.com/metaforge/profilekit/validate"
)

// Engine is the completeness engine facade.
type Engine struct {
	cfg      *config.Config
	registry *profile.Registry
	logger   *slog.Logger
}

// New creates an engine over a registry. A nil config uses defaults; a nil
// registry uses the built-in profiles; a nil logger uses slog.Default().
func New(cfg *config.Config, registry *profile.Registry, logger *slog.Logger) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if registry == nil {
		registry = profile.DefaultRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, registry: registry, logger: logger}
}

// Registry returns the engine's profile registry.
func (e *Engine) Registry() *profile.Registry {
	return e.registry
}

// Get returns the profile definition for a type.
func (e *Engine) Get(profileType string) (profile.ProfileDefinition, error) {
	return e.registry.Get(profileType)
}

// Validate runs the combined validation pass. The sanitization advisor is
// skipped when disabled in config; a sanitized copy is attached when the
// config requests it.
func (e *Engine) Validate(profileType string, doc document.Document) (*validate.Result, error) {
	result, err := validate.Document(e.registry, profileType, doc, validate.Options{
		WithSanitized: e.cfg.Sanitize.IsEnabled() && e.cfg.Sanitize.ShouldAttach(),
	})
	if err != nil {
		return nil, err
	}
	if !e.cfg.Sanitize.IsEnabled() {
		result.SecurityWarnings = nil
		result.Sanitized = nil
	}

	e.logger.Debug("Validated document",
		"profile", profileType,
		"valid", result.Valid,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
		"security_warnings", len(result.SecurityWarnings))
	return result, nil
}

// Suggest returns the per-tier suggestion buckets for a document.
func (e *Engine) Suggest(profileType string, doc document.Document) (suggest.Buckets, error) {
	def, err := e.registry.Get(profileType)
	if err != nil {
		return suggest.Buckets{}, err
	}
	buckets := suggest.Fields(def, doc)

	e.logger.Debug("Computed suggestions",
		"profile", profileType,
		"critical", len(buckets.Critical),
		"important", len(buckets.Important),
		"helpful", len(buckets.Helpful),
		"optional", len(buckets.Optional))
	return buckets, nil
}

// SuggestForDisplay returns the suggestion buckets with the optional list
// capped at the configured display length, ready for direct presentation.
// Suggest remains the uncapped source of record.
func (e *Engine) SuggestForDisplay(profileType string, doc document.Document) (suggest.Buckets, error) {
	buckets, err := e.Suggest(profileType, doc)
	if err != nil {
		return suggest.Buckets{}, err
	}
	return buckets.Display(e.cfg.Suggest.OptionalDisplayCap), nil
}

// Score returns the completion snapshot for a document. It is recomputed on
// every call and reflects only the document's current field set.
func (e *Engine) Score(profileType string, doc document.Document) (*score.CompletionStatus, error) {
	def, err := e.registry.Get(profileType)
	if err != nil {
		return nil, err
	}
	status := score.Completion(def, doc)

	e.logger.Debug("Scored document",
		"profile", profileType,
		"overall", status.Overall.Score,
		"status", status.Overall.Status)
	return status, nil
}

// Build reshapes a finalized document for delivery. An empty mode selects
// the configured default. Build never re-validates or re-scores.
func (e *Engine) Build(profileType string, doc document.Document, mode buildmode.Mode) (*buildmode.Output, error) {
	def, err := e.registry.Get(profileType)
	if err != nil {
		return nil, err
	}
	if mode == "" {
		mode = buildmode.Mode(e.cfg.Output.DefaultMode)
	}
	out := buildmode.Build(doc, def, mode)

	e.logger.Debug("Built document",
		"profile", profileType,
		"mode", mode,
		"split", out.Secondary != nil,
		"link_header", out.LinkHeader != "")
	return out, nil
}

// Sanitize runs the whole-document security pass on demand, independent of
// validation, and returns the sanitized copy with its findings.
func (e *Engine) Sanitize(doc document.Document) (document.Document, []sanitize.Warning) {
	return sanitize.Apply(doc)
}
