package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// SelectionSet holds at most one chosen option per category.
type SelectionSet map[Category]OptionLabel

// Select sets the option for cat, or clears it when opt is empty.
func (s SelectionSet) Select(cat Category, opt OptionLabel) {
	if opt == "" {
		delete(s, cat)
		return
	}
	s[cat] = opt
}

// Selection is one stored category/option pair of a persisted request.
type Selection struct {
	Category string
	Option   string
}

// SelectionList is the stored, ordered form of a SelectionSet.
//
// It is encoded as a JSON object and decoding keeps the key order found in
// the document, so exports list selections the way they were submitted.
type SelectionList []Selection

var errSelectionsNotObject = errors.New("selections must be a JSON object")

// Format renders "Category: Option; Category: Option".
func (l SelectionList) Format() string {
	parts := make([]string, 0, len(l))
	for _, s := range l {
		parts = append(parts, s.Category+": "+s.Option)
	}
	return strings.Join(parts, "; ")
}

func (l SelectionList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(s.Category)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(s.Option)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (l *SelectionList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*l = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errSelectionsNotObject
	}

	out := SelectionList{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		// Stored snapshots are opaque; non-string values keep their JSON text.
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			value = string(raw)
		}
		out = append(out, Selection{Category: key, Option: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*l = out
	return nil
}
