package generate

import (
	"context"
	"strings"
	"time"

	"github.com/fpang/gemini-deck-cli/internal/prompt"
	"github.com/rs/zerolog/log"
)

// FailureReason classifies why a generation attempt (or the whole request)
// produced no image.
type FailureReason string

const (
	ReasonNone             FailureReason = ""
	ReasonNoImage          FailureReason = "no_image_returned"
	ReasonInvalidImage     FailureReason = "invalid_image"
	ReasonRemoteError      FailureReason = "remote_error"
	ReasonExhaustedRetries FailureReason = "exhausted_retries"
)

// Result is the outcome of one orchestrated generation request. Exactly one
// of Image or Reason is meaningful: a success carries the image bytes, a
// failure carries the reason. LastAttempt preserves the classification of
// the final attempt when retries were exhausted.
type Result struct {
	Image       []byte
	Reason      FailureReason
	LastAttempt FailureReason
	Attempts    int
	CacheHit    bool
}

// OK reports whether the request produced a usable image.
func (r Result) OK() bool {
	return len(r.Image) > 0
}

// MinImageBytes is the validity threshold for a returned image artifact.
// Anything at or below this is treated as no image at all.
const MinImageBytes = 1000

// DefaultMaxAttempts bounds how many times one request is tried.
const DefaultMaxAttempts = 3

// DefaultBackoff waits min(30, 2^attempt) seconds before retry attempt i>0.
func DefaultBackoff(attempt int) time.Duration {
	secs := 1 << attempt
	if secs > 30 {
		secs = 30
	}
	return time.Duration(secs) * time.Second
}

// Config tunes the orchestrator's retry policy. Zero values fall back to the
// defaults; Sleep is injectable so tests run without waiting.
type Config struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	Sleep       func(time.Duration)
}

// Orchestrator issues one generation call per request through the cache,
// retrying transient failures with bounded exponential backoff and
// validating results before they are cached or returned.
type Orchestrator struct {
	model       ImageModel
	cache       Cache
	maxAttempts int
	backoff     func(attempt int) time.Duration
	sleep       func(time.Duration)
}

// New creates an orchestrator over a remote model and a cache. The cache may
// be nil, which disables caching entirely.
func New(model ImageModel, cache Cache, cfg Config) *Orchestrator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Backoff == nil {
		cfg.Backoff = DefaultBackoff
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	return &Orchestrator{
		model:       model,
		cache:       cache,
		maxAttempts: cfg.MaxAttempts,
		backoff:     cfg.Backoff,
		sleep:       cfg.Sleep,
	}
}

// Generate resolves one request to a result. A cache hit short-circuits the
// remote call entirely; a miss always results in at least one attempt. Only
// validated successes are cached. A request that fails never aborts the
// caller's batch: the failure is returned as a value.
func (o *Orchestrator) Generate(ctx context.Context, req prompt.GenerationRequest, useCache bool) Result {
	var digest string
	if useCache && o.cache != nil {
		digest = o.cache.Key(req)
		if data, ok := o.cache.Get(digest); ok {
			log.Info().
				Str("title", req.Title).
				Str("digest", digest).
				Msg("Loaded image from cache")
			return Result{Image: data, CacheHit: true}
		}
	}

	promptText := req.Prompt()
	imgCfg := ImageConfig{AspectRatio: req.AspectRatio, Resolution: req.Resolution}

	var lastReason FailureReason
	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		if attempt > 0 {
			wait := o.backoff(attempt)
			log.Info().
				Int("attempt", attempt+1).
				Int("max_attempts", o.maxAttempts).
				Dur("wait", wait).
				Msg("Waiting before generation retry")
			o.sleep(wait)
		}

		out, err := o.model.GenerateImage(ctx, promptText, imgCfg)
		if err != nil {
			lastReason = ReasonRemoteError
			if isRateLimited(err) {
				log.Warn().
					Err(err).
					Int("attempt", attempt+1).
					Msg("Rate limited by Gemini API, will retry")
			} else {
				log.Warn().
					Err(err).
					Int("attempt", attempt+1).
					Msg("Generation attempt failed, will retry")
			}
			continue
		}

		switch {
		case len(out.ImageData) == 0:
			lastReason = ReasonNoImage
			log.Warn().
				Int("attempt", attempt+1).
				Msg("No image returned, will retry")
		case len(out.ImageData) <= MinImageBytes:
			lastReason = ReasonInvalidImage
			log.Warn().
				Int("attempt", attempt+1).
				Int("image_bytes", len(out.ImageData)).
				Msg("Returned image below validity threshold, will retry")
		default:
			if useCache && o.cache != nil {
				if err := o.cache.Put(digest, out.ImageData); err != nil {
					log.Warn().Err(err).Str("digest", digest).Msg("Failed to cache generated image")
				}
			}
			log.Info().
				Str("title", req.Title).
				Int("image_bytes", len(out.ImageData)).
				Int("attempts", attempt+1).
				Msg("Image generated")
			return Result{Image: out.ImageData, Attempts: attempt + 1}
		}
	}

	log.Error().
		Str("title", req.Title).
		Int("attempts", o.maxAttempts).
		Str("last_reason", string(lastReason)).
		Msg("Generation failed after all attempts")

	return Result{
		Reason:      ReasonExhaustedRetries,
		LastAttempt: lastReason,
		Attempts:    o.maxAttempts,
	}
}

// isRateLimited matches rate-limit-shaped errors ("429" or "quota" in the
// message). Classification is diagnostic only; the retry policy is the same
// either way.
func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "quota")
}
