// Package chttp provides layered, inheritable HTTP client configuration with
// pluggable body codecs.
//
// # Overview
//
// chttp models request and response settings as a chain of configuration
// levels: library-wide defaults, per-verb templates and per-call overrides.
// A level's unset fields defer to its parent, so the effective value of any
// setting is computed by walking the chain. Bodies are encoded and parsed by
// codec functions selected by content type, with runtime validation of which
// body kinds each codec accepts.
//
// A minimal example:
//
//	client := chttp.NewClient(nil, chttp.DefaultConfig(), nil)
//
//	cfg := chttp.NewConfig(client.Base())
//	cfg.Request.SetContentType(chttp.ContentJSON)
//	cfg.Request.SetBody(chttp.StructuredBody(map[string]any{"a": 1}))
//
//	result, err := client.Post(ctx, "https://api.example.com/items", cfg)
//
// # Configuration Chains
//
// [NewConfig] creates a level deferring to its parent; nil makes a root.
// Parents are constructed first and must not be mutated once children
// reference them. That construction order rules out cycles, and the
// effective immutability of shared ancestors is what makes concurrent
// resolution by many in-flight requests safe without locking.
//
// Two resolution policies exist:
//
//   - First-non-null: the nearest level that sets a value wins. Used for
//     content type, charset, body, encoders, parsers, status handlers and
//     authentication (where a descriptor without a concrete kind counts as
//     unset).
//   - Accumulate-merge: every level contributes. Headers merge with the
//     nearest descendant winning name collisions; cookies append from every
//     level without deduplication.
//
// The generic [Resolve] and [Collect] functions implement both policies and
// are usable for custom fields.
//
// # Codecs
//
// Built-in encoders and parsers cover binary, text, form, xml, html and json
// content; [DefaultConfig] installs them on a root level. Every encoder
// follows the same contract:
//
//  1. A nil effective body fails with a nil-body error.
//  2. A raw transferable body (open stream, file handle) streams to the sink
//     directly, bypassing type checks.
//  3. Otherwise the body's kind must be in the codec's accepted set, or the
//     encode fails naming both the actual kind and the accepted set.
//  4. The body is transformed and delivered to the sink exactly once.
//
// Bodies carry an explicit [BodyKind] tag assigned once by their constructor
// ([TextBody], [BytesBody], [StructuredBody], ...) so codecs dispatch on the
// tag instead of reflecting on runtime types.
//
// Parser selection is the one place that never fails: a content type no level
// claims degrades to the raw-bytes parser, since a response must always be
// consumable even when untyped.
//
// # Error Handling
//
// All failures are surfaced to the immediate caller as a Kind-coded [*Error];
// nothing is logged-and-swallowed inside the core. [KindOf] recovers the kind
// from a wrapped error:
//
//	if chttp.KindOf(err) == chttp.KindConfiguration {
//	    // setup mistake: missing content type or encoder
//	}
//
// Transfer errors wrap underlying I/O failures and are never retried here;
// retries belong to the transport.
//
// # Concurrency
//
// Resolution is synchronous and bounded by chain depth. The one piece of
// mutable scratch state, the growable [TextBuffer] used by the text parser,
// is pooled per call and never shared across concurrent parses.
package chttp
