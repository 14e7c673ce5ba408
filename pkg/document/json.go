package document

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/dmitrymomot/receiptcheck/pkg/finding"
)

// DecodeJSON decodes a JSON object into a canonical document. Key order is
// preserved by walking the token stream instead of unmarshaling into a Go
// map, and numbers keep their source text (UseNumber) so integer checks
// stay exact. A duplicate key inside an object yields a warning finding
// and the later value wins, matching common JSON decoder behavior.
func DecodeJSON(data []byte) (*Document, finding.Findings, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, ErrNotObject)
	}

	var warns finding.Findings
	doc, err := decodeJSONObject(dec, finding.Root(), &warns)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	// Anything after the closing brace is malformed input.
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return doc, warns, nil
}

func decodeJSONObject(dec *json.Decoder, path finding.Path, warns *finding.Findings) (*Document, error) {
	doc := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", keyTok)
		}
		if doc.Has(key) {
			*warns = append(*warns, finding.Warningf(finding.CodeDuplicateKey,
				path.Field(key), "Duplicate key %q, keeping the last value", key))
		}
		val, err := decodeJSONValue(dec, path.Field(key), warns)
		if err != nil {
			return nil, err
		}
		doc.Set(key, val)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeJSONArray(dec *json.Decoder, path finding.Path, warns *finding.Findings) (List, error) {
	list := List{}
	for i := 0; dec.More(); i++ {
		val, err := decodeJSONValue(dec, path.Index(i), warns)
		if err != nil {
			return nil, err
		}
		list = append(list, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return list, nil
}

func decodeJSONValue(dec *json.Decoder, path finding.Path, warns *finding.Findings) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec, path, warns)
		case '[':
			return decodeJSONArray(dec, path, warns)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return StringValue(t), nil
	case json.Number:
		return NumberValue(t.String()), nil
	case bool:
		return BoolValue(t), nil
	case nil:
		return NullValue(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}
