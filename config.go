package chttp

import (
	"github.com/cockroachdb/errors"
)

// Cookie is one name/value record with its optional scope. Cookies accumulate
// across the chain without deduplication: an ancestor's cookie and a
// descendant's cookie with the same name both survive resolution.
type Cookie struct {
	Name   string
	Value  string
	Domain string
	Path   string
}

// AuthType enumerates the authentication kinds a descriptor can carry. The
// core resolves descriptors; executing the protocol is the transport's job.
type AuthType int

const (
	AuthNone AuthType = iota
	AuthBasic
	AuthDigest
)

// Auth is an opaque authentication descriptor. A descriptor whose Type is
// [AuthNone] is treated as absent during resolution, so placing an empty Auth
// on a child cannot mask an ancestor's credentials.
type Auth struct {
	Type     AuthType
	User     string
	Password string
}

// Encoder turns the resolved body of a request chain into a stream delivered
// to the sink. Implementations follow the contract described in the package
// documentation: nil check, raw-stream shortcut, kind guard, transform.
type Encoder func(*RequestSpec, ToServer) error

// Parser turns a response body into an in-memory value.
type Parser func(FromServer) (any, error)

// Handler is a per-status-code response handler. It receives the server
// handle and the parsed value and may ignore either; what it returns becomes
// the result of the exchange.
type Handler func(FromServer, any) (any, error)

// RequestSpec is one level of layered request configuration. Unset fields
// defer to the parent; a nil parent makes the node a root. Parents are built
// first and must not be mutated once a child references them, which also rules
// out cycles by construction order.
type RequestSpec struct {
	parent *RequestSpec

	contentType string
	charset     string
	body        *Body
	headers     map[string]string
	cookies     []Cookie
	auth        *Auth
	encoders    map[string]Encoder
}

// NewRequestSpec inits an empty node deferring to parent (nil for a root).
func NewRequestSpec(parent *RequestSpec) *RequestSpec {
	return &RequestSpec{
		parent:   parent,
		headers:  make(map[string]string),
		encoders: make(map[string]Encoder),
	}
}

// Parent returns the next node towards the root, or nil.
func (r *RequestSpec) Parent() *RequestSpec { return r.parent }

// SetContentType sets this level's content type.
func (r *RequestSpec) SetContentType(ct string) *RequestSpec {
	r.contentType = ct
	return r
}

// SetCharset sets this level's charset by IANA name, e.g. "utf-8".
func (r *RequestSpec) SetCharset(cs string) *RequestSpec {
	r.charset = cs
	return r
}

// SetBody sets this level's body.
func (r *RequestSpec) SetBody(b *Body) *RequestSpec {
	r.body = b
	return r
}

// SetHeader sets one header at this level.
func (r *RequestSpec) SetHeader(name, value string) *RequestSpec {
	r.headers[name] = value
	return r
}

// AddCookie appends one cookie at this level.
func (r *RequestSpec) AddCookie(c Cookie) *RequestSpec {
	r.cookies = append(r.cookies, c)
	return r
}

// SetAuth sets this level's authentication descriptor.
func (r *RequestSpec) SetAuth(a *Auth) *RequestSpec {
	r.auth = a
	return r
}

// SetBasicAuth is shorthand for a basic-auth descriptor.
func (r *RequestSpec) SetBasicAuth(user, password string) *RequestSpec {
	return r.SetAuth(&Auth{Type: AuthBasic, User: user, Password: password})
}

// RegisterEncoder binds an encoder to a content type at this level.
func (r *RequestSpec) RegisterEncoder(contentType string, enc Encoder) *RequestSpec {
	r.encoders[contentType] = enc
	return r
}

// ActualContentType resolves the effective content type, empty when no level
// sets one.
func (r *RequestSpec) ActualContentType() string {
	ct, _ := Resolve(r, (*RequestSpec).Parent,
		func(n *RequestSpec) string { return n.contentType },
		func(s string) bool { return s != "" })
	return ct
}

// ActualCharset resolves the effective charset, falling back to
// [DefaultCharset] when no level sets one.
func (r *RequestSpec) ActualCharset() string {
	cs, ok := Resolve(r, (*RequestSpec).Parent,
		func(n *RequestSpec) string { return n.charset },
		func(s string) bool { return s != "" })
	if !ok {
		return DefaultCharset
	}
	return cs
}

// ActualBody resolves the effective body, nil when no level sets one.
func (r *RequestSpec) ActualBody() *Body {
	b, _ := Resolve(r, (*RequestSpec).Parent,
		func(n *RequestSpec) *Body { return n.body },
		func(b *Body) bool { return b != nil })
	return b
}

// ActualHeaders merges every level's headers into one map. The walk is child
// first and the first occurrence of a name wins, so the nearest descendant's
// value shadows its ancestors'.
func (r *RequestSpec) ActualHeaders() map[string]string {
	merged := make(map[string]string)
	Collect(r, (*RequestSpec).Parent,
		func(n *RequestSpec) map[string]string { return n.headers },
		func(hs map[string]string) {
			for name, value := range hs {
				if _, ok := merged[name]; !ok {
					merged[name] = value
				}
			}
		})
	return merged
}

// ActualCookies appends every level's cookies, child first, without dedup.
func (r *RequestSpec) ActualCookies() []Cookie {
	var all []Cookie
	Collect(r, (*RequestSpec).Parent,
		func(n *RequestSpec) []Cookie { return n.cookies },
		func(cs []Cookie) { all = append(all, cs...) })
	return all
}

// ActualAuth resolves the effective authentication descriptor. A descriptor
// without a concrete type does not count, so resolution keeps walking past it.
func (r *RequestSpec) ActualAuth() *Auth {
	a, _ := Resolve(r, (*RequestSpec).Parent,
		func(n *RequestSpec) *Auth { return n.auth },
		func(a *Auth) bool { return a != nil && a.Type != AuthNone })
	return a
}

// ActualEncoder resolves the nearest encoder registered for the content type,
// nil when no level registers one.
func (r *RequestSpec) ActualEncoder(contentType string) Encoder {
	enc, _ := Resolve(r, (*RequestSpec).Parent,
		func(n *RequestSpec) Encoder { return n.encoders[contentType] },
		func(e Encoder) bool { return e != nil })
	return enc
}

// ResponseSpec is one level of layered response configuration: parsers keyed
// by content type and handlers keyed by status code. The same chain rules as
// [RequestSpec] apply.
type ResponseSpec struct {
	parent *ResponseSpec

	parsers  map[string]Parser
	handlers map[int]Handler
}

// NewResponseSpec inits an empty node deferring to parent (nil for a root).
func NewResponseSpec(parent *ResponseSpec) *ResponseSpec {
	return &ResponseSpec{
		parent:   parent,
		parsers:  make(map[string]Parser),
		handlers: make(map[int]Handler),
	}
}

// Parent returns the next node towards the root, or nil.
func (r *ResponseSpec) Parent() *ResponseSpec { return r.parent }

// RegisterParser binds a parser to a content type at this level.
func (r *ResponseSpec) RegisterParser(contentType string, p Parser) *ResponseSpec {
	r.parsers[contentType] = p
	return r
}

// When binds a handler to a status code at this level.
func (r *ResponseSpec) When(status int, h Handler) *ResponseSpec {
	r.handlers[status] = h
	return r
}

// ActualParser resolves the nearest parser registered for the content type,
// nil when no level registers one.
func (r *ResponseSpec) ActualParser(contentType string) Parser {
	p, _ := Resolve(r, (*ResponseSpec).Parent,
		func(n *ResponseSpec) Parser { return n.parsers[contentType] },
		func(p Parser) bool { return p != nil })
	return p
}

// ActualHandler resolves the nearest handler registered for the status code,
// nil when no level registers one.
func (r *ResponseSpec) ActualHandler(status int) Handler {
	h, _ := Resolve(r, (*ResponseSpec).Parent,
		func(n *ResponseSpec) Handler { return n.handlers[status] },
		func(h Handler) bool { return h != nil })
	return h
}

// Config pairs the request and response views of one configuration level.
type Config struct {
	Request  *RequestSpec
	Response *ResponseSpec
}

// NewConfig inits a child level of parent, or a fresh root when parent is nil.
func NewConfig(parent *Config) *Config {
	var preq *RequestSpec
	var pres *ResponseSpec
	if parent != nil {
		preq, pres = parent.Request, parent.Response
	}

	return &Config{
		Request:  NewRequestSpec(preq),
		Response: NewResponseSpec(pres),
	}
}

// FindContentType resolves the effective content type. A body without a
// content type anywhere in the chain is a configuration error: content types
// are never defaulted silently. No body and no content type is fine, there is
// simply nothing to encode.
func (c *Config) FindContentType() (string, error) {
	ct := c.Request.ActualContentType()
	if ct == "" && c.Request.ActualBody() != nil {
		return "", NewError(KindConfiguration,
			errors.New("found request body, but content type is undefined"))
	}

	return ct, nil
}

// FindEncoder resolves the encoder for the effective content type, failing
// when no level of the chain registers one.
func (c *Config) FindEncoder() (Encoder, error) {
	ct, err := c.FindContentType()
	if err != nil {
		return nil, err
	}

	enc := c.Request.ActualEncoder(ct)
	if enc == nil {
		return nil, NewError(KindConfiguration,
			errors.Newf("no encoder found for content type %q", ct))
	}

	return enc, nil
}

// FindParser resolves the parser for the content type, degrading to
// [ParseBytes] when no level registers one: a response must always be
// consumable, unknown content types come back as opaque bytes.
func (c *Config) FindParser(contentType string) Parser {
	if p := c.Response.ActualParser(contentType); p != nil {
		return p
	}
	return ParseBytes
}
