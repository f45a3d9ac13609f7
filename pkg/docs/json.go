package docs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SlotDocs is an ordered list that marshals as a JSON object keyed by slot
// name. A plain map would lose the catalog order.
type SlotDocs []SlotDoc

// MarshalJSON writes the slots as an object in list order.
func (s SlotDocs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, doc := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(doc.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the object form, losing nothing but the order
// guarantee callers get from [Load].
func (s *SlotDocs) UnmarshalJSON(data []byte) error {
	var m map[string]SlotDoc
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = (*s)[:0]
	for name, doc := range m {
		doc.Name = name
		*s = append(*s, doc)
	}
	return nil
}

// WriteJSON encodes the documentation payload as indented JSON to w.
func WriteJSON(doc *Doc, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode docs: %w", err)
	}
	return nil
}

// ExportJSON writes slots.json content to a file at path.
func ExportJSON(doc *Doc, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
