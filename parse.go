package chttp

import (
	"encoding/xml"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
	xcharset "golang.org/x/net/html/charset"
)

// ParseBytes drains the response body into a byte slice. It performs no
// interpretation, which also makes it the universal fallback for content
// types nothing in the chain claims.
func ParseBytes(fs FromServer) (any, error) {
	data, err := io.ReadAll(fs.Reader())
	if err != nil {
		return nil, NewError(KindTransfer, errors.Wrap(err, "drain response body"))
	}

	return data, nil
}

// decodedReader wraps the response stream with a decoder for its charset.
func decodedReader(fs FromServer) (io.Reader, error) {
	reader, err := xcharset.NewReaderLabel(fs.Charset(), fs.Reader())
	if err != nil {
		return nil, NewError(KindTransfer, errors.Wrapf(err, "unsupported charset %q", fs.Charset()))
	}

	return reader, nil
}

// ParseText drains the response body through a charset-aware decoder into a
// string. The growable buffer avoids pre-sizing; one is taken from the pool
// per call so concurrent parses never share state.
func ParseText(fs FromServer) (any, error) {
	reader, err := decodedReader(fs)
	if err != nil {
		return nil, err
	}

	buf := AcquireTextBuffer()
	defer buf.Free()

	chunk := make([]byte, textBufferInitialCap)
	for {
		n, err := reader.Read(chunk)
		if n > 0 {
			buf.Append(chunk[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, NewError(KindTransfer, errors.Wrap(err, "read response body"))
		}
	}

	return buf.String(), nil
}

// parseTextString is ParseText with its concrete type, for parsers that
// post-process the decoded text.
func parseTextString(fs FromServer) (string, error) {
	v, err := ParseText(fs)
	if err != nil {
		return "", err
	}

	s, _ := v.(string)
	return s, nil
}

// ParseForm decodes a "key=value&..." body into a string multimap. Repeated
// keys all survive.
func ParseForm(fs FromServer) (any, error) {
	text, err := parseTextString(fs)
	if err != nil {
		return nil, err
	}

	values, err := url.ParseQuery(text)
	if err != nil {
		return nil, NewError(KindParse, errors.Wrap(err, "malformed form body"))
	}

	return values, nil
}

// ParseJSON decodes a json body into a generic structured value: nested
// map[string]any / []any / scalars. The body is validated first so malformed
// input fails instead of silently producing a partial value.
func ParseJSON(fs FromServer) (any, error) {
	text, err := parseTextString(fs)
	if err != nil {
		return nil, err
	}

	if !gjson.Valid(text) {
		return nil, NewError(KindParse, errors.New("malformed json body"))
	}

	return gjson.Parse(text).Value(), nil
}

// MarkupNode is one element of a parsed xml document: its name, attributes,
// child elements and accumulated character data.
type MarkupNode struct {
	Name     string
	Attr     []xml.Attr
	Children []*MarkupNode
	Text     string
}

// Child returns the first child element with the given name, or nil.
func (n *MarkupNode) Child(name string) *MarkupNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ParseXML strictly parses an xml body into a [MarkupNode] tree. A doctype
// declaration is tolerated and skipped; external DTDs are never fetched.
func ParseXML(fs FromServer) (any, error) {
	dec := xml.NewDecoder(fs.Reader())
	dec.Strict = true
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		return xcharset.NewReaderLabel(label, input)
	}

	var root *MarkupNode
	var stack []*MarkupNode
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, NewError(KindParse, errors.Wrap(err, "malformed xml body"))
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &MarkupNode{Name: t.Name.Local, Attr: t.Attr}
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, NewError(KindParse, errors.New("xml body holds no document element"))
	}

	return root, nil
}

// ParseHTML leniently parses an html body into a node tree. Tag soup is
// tolerated the way browsers tolerate it.
func ParseHTML(fs FromServer) (any, error) {
	reader, err := decodedReader(fs)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(reader)
	if err != nil {
		return nil, NewError(KindParse, errors.Wrap(err, "parse html body"))
	}

	return doc, nil
}

// DownloadTo returns a parser that streams the response body to the given
// path and yields that path instead of an in-memory value. The destination
// file is closed exactly once on every exit path.
func DownloadTo(path string) Parser {
	return func(fs FromServer) (any, error) {
		out, err := os.Create(path)
		if err != nil {
			return nil, NewError(KindTransfer, errors.Wrap(err, "create download target"))
		}

		_, copyErr := io.Copy(out, fs.Reader())
		closeErr := out.Close()

		if copyErr != nil {
			return nil, NewError(KindTransfer, errors.Wrap(copyErr, "download response body"))
		}
		if closeErr != nil {
			return nil, NewError(KindTransfer, errors.Wrap(closeErr, "close download target"))
		}

		return path, nil
	}
}

// TextOf returns the concatenated text of an html subtree, a small
// convenience for asserting on parsed documents.
func TextOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return sb.String()
}
