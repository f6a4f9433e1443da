package chttp

// Content types the built-in codecs register under.
const (
	ContentBinary = "application/octet-stream"
	ContentText   = "text/plain"
	ContentForm   = "application/x-www-form-urlencoded"
	ContentXML    = "application/xml"
	ContentXMLAlt = "text/xml"
	ContentHTML   = "text/html"
	ContentJSON   = "application/json"
	ContentJS     = "application/javascript"
	ContentJSAlt  = "text/javascript"
)

// DefaultConfig builds the process-wide root configuration level with the
// built-in codecs installed. Build it once during an initialization phase the
// host controls, share it as the ancestor of every chain, and treat it as
// frozen from then on: resolution assumes ancestors are immutable while in
// use, which is what makes concurrent resolution safe without locking.
func DefaultConfig() *Config {
	cfg := NewConfig(nil)

	req := cfg.Request
	req.RegisterEncoder(ContentBinary, EncodeBinary)
	req.RegisterEncoder(ContentText, EncodeText)
	req.RegisterEncoder(ContentForm, EncodeForm)
	req.RegisterEncoder(ContentXML, EncodeXML)
	req.RegisterEncoder(ContentXMLAlt, EncodeXML)
	req.RegisterEncoder(ContentJSON, EncodeJSON)
	req.RegisterEncoder(ContentJS, EncodeJSON)
	req.RegisterEncoder(ContentJSAlt, EncodeJSON)

	res := cfg.Response
	res.RegisterParser(ContentBinary, ParseBytes)
	res.RegisterParser(ContentText, ParseText)
	res.RegisterParser(ContentForm, ParseForm)
	res.RegisterParser(ContentXML, ParseXML)
	res.RegisterParser(ContentXMLAlt, ParseXML)
	res.RegisterParser(ContentHTML, ParseHTML)
	res.RegisterParser(ContentJSON, ParseJSON)
	res.RegisterParser(ContentJS, ParseJSON)
	res.RegisterParser(ContentJSAlt, ParseJSON)

	return cfg
}
