package chttp

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	xcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// checkNil resolves the effective body of the chain, failing with a nil-body
// error when no level sets one.
func checkNil(r *RequestSpec) (*Body, error) {
	body := r.ActualBody()
	if body == nil {
		return nil, NewError(KindNilBody, errors.New("effective body cannot be nil"))
	}

	return body, nil
}

// checkKinds verifies the body's tag is in the codec's accepted set. The
// message names both the actual kind and the accepted set.
func checkKinds(body *Body, accepted ...BodyKind) error {
	if body.is(accepted...) {
		return nil
	}

	names := lo.Map(accepted, func(k BodyKind, _ int) string { return k.String() })

	return NewError(KindUnsupportedBody,
		errors.Newf("cannot encode bodies of kind %s, only bodies of: %s",
			body.Kind(), strings.Join(names, ", ")))
}

// handleRawUpload streams raw transferable bodies (open streams, file
// handles) straight to the sink, bypassing all type-specific transforms. It
// reports whether it handled the body.
func handleRawUpload(body *Body, ts ToServer) (bool, error) {
	raw, ok := body.raw()
	if !ok {
		return false, nil
	}

	return true, ts.ToServer(raw)
}

// encodeText produces a reader over s encoded in the named charset. UTF-8 is
// a pass-through since that is already Go's in-memory representation.
func encodeText(s, charsetName string) (io.Reader, error) {
	if charsetName == "" || strings.EqualFold(charsetName, DefaultCharset) {
		return strings.NewReader(s), nil
	}

	enc, _ := xcharset.Lookup(charsetName)
	if enc == nil {
		return nil, NewError(KindTransfer, errors.Newf("unsupported charset %q", charsetName))
	}

	var out bytes.Buffer
	w := transform.NewWriter(&out, enc.NewEncoder())
	if _, err := w.Write([]byte(s)); err != nil {
		return nil, NewError(KindTransfer, errors.Wrap(err, "transcode body"))
	}
	if err := w.Close(); err != nil {
		return nil, NewError(KindTransfer, errors.Wrap(err, "transcode body"))
	}

	return bytes.NewReader(out.Bytes()), nil
}

// EncodeBinary is the standard encoder for binary content. Beyond raw
// streams it accepts byte-sequence bodies and passes them through untouched.
func EncodeBinary(r *RequestSpec, ts ToServer) error {
	body, err := checkNil(r)
	if err != nil {
		return err
	}
	if done, err := handleRawUpload(body, ts); done {
		return err
	}
	if err := checkKinds(body, BodyBytes); err != nil {
		return err
	}

	return ts.ToServer(bytes.NewReader(body.bytes))
}

// EncodeText is the standard encoder for text content. Beyond raw streams it
// accepts text bodies, encoded with the chain's resolved charset.
func EncodeText(r *RequestSpec, ts ToServer) error {
	body, err := checkNil(r)
	if err != nil {
		return err
	}
	if done, err := handleRawUpload(body, ts); done {
		return err
	}
	if err := checkKinds(body, BodyText); err != nil {
		return err
	}

	out, err := encodeText(body.text, r.ActualCharset())
	if err != nil {
		return err
	}

	return ts.ToServer(out)
}

// EncodeForm is the standard encoder for "application/x-www-form-urlencoded"
// content. A text body is assumed to be url-encoded already and passes
// through; a mapping body is percent-encoded as key=value pairs joined by
// '&', repeated keys included.
func EncodeForm(r *RequestSpec, ts ToServer) error {
	body, err := checkNil(r)
	if err != nil {
		return err
	}
	if done, err := handleRawUpload(body, ts); done {
		return err
	}
	if err := checkKinds(body, BodyText, BodyMapping); err != nil {
		return err
	}

	encoded := body.text
	if body.Kind() == BodyMapping {
		encoded = body.form.Encode()
	}

	out, err := encodeText(encoded, r.ActualCharset())
	if err != nil {
		return err
	}

	return ts.ToServer(out)
}

// EncodeXML is the standard encoder for xml content. A text body passes
// through as-is; a markup body is serialized through encoding/xml first. Both
// are then encoded with the resolved charset.
func EncodeXML(r *RequestSpec, ts ToServer) error {
	body, err := checkNil(r)
	if err != nil {
		return err
	}
	if done, err := handleRawUpload(body, ts); done {
		return err
	}
	if err := checkKinds(body, BodyText, BodyMarkup); err != nil {
		return err
	}

	text := body.text
	if body.Kind() == BodyMarkup {
		serialized, err := xml.Marshal(body.value)
		if err != nil {
			return NewError(KindTransfer, errors.Wrap(err, "serialize markup body"))
		}
		text = string(serialized)
	}

	out, err := encodeText(text, r.ActualCharset())
	if err != nil {
		return err
	}

	return ts.ToServer(out)
}

// EncodeJSON is the standard encoder for json content. A text body is assumed
// to be json already and passes through; a structured body is serialized
// first. Both are then encoded with the resolved charset.
func EncodeJSON(r *RequestSpec, ts ToServer) error {
	body, err := checkNil(r)
	if err != nil {
		return err
	}
	if done, err := handleRawUpload(body, ts); done {
		return err
	}
	if err := checkKinds(body, BodyText, BodyStructured); err != nil {
		return err
	}

	text := body.text
	if body.Kind() == BodyStructured {
		serialized, err := json.Marshal(body.value)
		if err != nil {
			return NewError(KindTransfer, errors.Wrap(err, "serialize json body"))
		}
		text = string(serialized)
	}

	out, err := encodeText(text, r.ActualCharset())
	if err != nil {
		return err
	}

	return ts.ToServer(out)
}
