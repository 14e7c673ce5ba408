package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/receiptcheck/pkg/finding"
)

// DecodeXML decodes an XML document into a canonical document. Attributes
// merge into the element's mapping under their own names, a text-only leaf
// becomes a string scalar, mixed content keeps its text under "#text", and
// siblings sharing a tag name collect into a list in encounter order.
//
// When an attribute and a child element share a name the child wins and a
// warning finding records the collision; source documents should not rely
// on that shape.
func DecodeXML(data []byte) (*Document, finding.Findings, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, nil, fmt.Errorf("%w: no root element", ErrParse)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue // prolog, comments, whitespace
		}

		var warns finding.Findings
		val, err := decodeXMLElement(dec, start, finding.Root(), &warns)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		doc, ok := val.(*Document)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %v", ErrParse, ErrNotObject)
		}
		return doc, warns, nil
	}
}

type xmlChild struct {
	name  string
	value Value
}

func decodeXMLElement(dec *xml.Decoder, start xml.StartElement, path finding.Path, warns *finding.Findings) (Value, error) {
	var (
		children []xmlChild
		text     strings.Builder
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			val, err := decodeXMLElement(dec, t, path.Field(t.Name.Local), warns)
			if err != nil {
				return nil, err
			}
			children = append(children, xmlChild{name: t.Name.Local, value: val})
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			return buildXMLValue(start, children, strings.TrimSpace(text.String()), path, warns), nil
		}
	}
}

func buildXMLValue(start xml.StartElement, children []xmlChild, text string, path finding.Path, warns *finding.Findings) Value {
	if len(children) == 0 && len(start.Attr) == 0 {
		return StringValue(text)
	}

	doc := New()
	fromAttr := make(map[string]bool, len(start.Attr))
	for _, attr := range start.Attr {
		doc.Set(attr.Name.Local, StringValue(attr.Value))
		fromAttr[attr.Name.Local] = true
	}
	if text != "" {
		doc.Set("#text", StringValue(text))
	}

	counts := make(map[string]int, len(children))
	for _, c := range children {
		counts[c.name]++
	}
	grouped := make(map[string]bool)
	for _, c := range children {
		if fromAttr[c.name] && !grouped[c.name] {
			*warns = append(*warns, finding.Warningf(finding.CodeNameCollision,
				path.Field(c.name),
				"Attribute %q collides with a child element of <%s>; the element value is kept", c.name, start.Name.Local))
			delete(fromAttr, c.name)
		}
		if counts[c.name] == 1 {
			doc.Set(c.name, c.value)
			continue
		}
		if grouped[c.name] {
			continue
		}
		grouped[c.name] = true
		list := make(List, 0, counts[c.name])
		for _, cc := range children {
			if cc.name == c.name {
				list = append(list, cc.value)
			}
		}
		doc.Set(c.name, list)
	}
	return doc
}
