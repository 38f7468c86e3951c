package xmltree

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// ErrNoElement is returned when the input contains no XML element at all.
// encoding/xml tolerates bare text, but a report document without a root
// element is malformed for our purposes.
var ErrNoElement = errors.New("no XML element found in document")

// ErrTrailingContent is returned when content follows the document
// element.
var ErrTrailingContent = errors.New("content after document element")

// CharDataKey is the map key under which the decoder stores the text
// content of an element that also carries attributes or child elements.
const CharDataKey = "_"

// Decode reads an XML document and returns its decoded tree with the root
// element stripped: the returned node is the content of the document
// element, not a map keyed by its name. It returns an error only when the
// input is not well-formed XML.
func Decode(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			root, err = decodeElement(dec, start)
			if err != nil {
				return nil, err
			}
			break
		}
	}

	if root == nil {
		return nil, ErrNoElement
	}

	// Drain the remainder so trailing malformations still surface.
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return root, nil
		}
		if err != nil {
			return nil, err
		}
		switch tok := tok.(type) {
		case xml.CharData:
			if strings.TrimSpace(string(tok)) != "" {
				return nil, ErrTrailingContent
			}
		case xml.StartElement:
			return nil, ErrTrailingContent
		}
	}
}

// DecodeString decodes an XML document held in a string.
func DecodeString(s string) (*Node, error) {
	return Decode(strings.NewReader(s))
}

// decodeElement consumes tokens up to the matching end element and builds
// the node for the element's content. An element with neither attributes
// nor children decodes to a scalar of its trimmed text; anything richer
// decodes to a map with attributes merged as keys and repeated children
// promoted to lists.
func decodeElement(dec *xml.Decoder, start xml.StartElement) (*Node, error) {
	node := NewMap()
	for _, attr := range start.Attr {
		node.Set(attr.Name.Local, NewScalar(strings.TrimSpace(attr.Value)))
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			// A truncated document reaches EOF before the end element.
			return nil, err
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, tok)
			if err != nil {
				return nil, err
			}
			node.Set(tok.Name.Local, child)

		case xml.CharData:
			text.Write(tok)

		case xml.EndElement:
			trimmed := strings.TrimSpace(text.String())
			if node.Len() == 0 {
				return NewScalar(trimmed), nil
			}
			if trimmed != "" {
				node.Set(CharDataKey, NewScalar(trimmed))
			}
			return node, nil
		}
	}
}
