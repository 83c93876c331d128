package cadence

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"unicode/utf8"
)

// PayloadShape tags the layouts an event payload is known to arrive in
type PayloadShape int

const (
	ShapeUnknown PayloadShape = iota
	// ShapeEventComposite is {"type":"Event","value":{"id":..,"fields":[{name,value}]}}
	ShapeEventComposite
	// ShapeFlatObject is a plain JSON object such as {"id":..,"to":..}
	ShapeFlatObject
)

func (s PayloadShape) String() string {
	switch s {
	case ShapeEventComposite:
		return "composite"
	case ShapeFlatObject:
		return "flat"
	}
	return "unknown"
}

// Payload is a decoded event payload
type Payload struct {
	Shape  PayloadShape
	TypeID string
	fields map[string]json.RawMessage
}

// DecodePayload base64-decodes payload and parses it as JSON. It reports
// false on any decoding failure and never panics.
func DecodePayload(payloadBase64 string) (*Payload, bool) {
	if payloadBase64 == "" {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(payloadBase64)
	if err != nil {
		return nil, false
	}
	if !utf8.Valid(data) || !json.Valid(data) {
		return nil, false
	}
	return parsePayload(data), true
}

func parsePayload(data []byte) *Payload {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return &Payload{Shape: ShapeUnknown}
	}

	var typ string
	if raw, ok := top["type"]; ok && json.Unmarshal(raw, &typ) == nil && compositeTypes[typ] {
		var c compositeValue
		if err := json.Unmarshal(top["value"], &c); err == nil && c.Fields != nil {
			fields := make(map[string]json.RawMessage, len(c.Fields))
			for _, f := range c.Fields {
				fields[f.Name] = f.Value
			}
			return &Payload{Shape: ShapeEventComposite, TypeID: c.Id, fields: fields}
		}
	}
	return &Payload{Shape: ShapeFlatObject, fields: top}
}

// Fields returns the raw field values keyed by name
func (p *Payload) Fields() map[string]json.RawMessage {
	return p.fields
}

// Value decodes one field into plain Go values
func (p *Payload) Value(name string) (interface{}, bool) {
	raw, ok := p.fields[name]
	if !ok {
		return nil, false
	}
	switch p.Shape {
	case ShapeEventComposite:
		v, err := Decode(raw)
		if err != nil {
			return nil, false
		}
		return v, true
	case ShapeFlatObject:
		v, err := decodePlain(raw)
		if err != nil {
			return nil, false
		}
		return v, true
	}
	return nil, false
}

// String returns a scalar field as text
func (p *Payload) String(name string) string {
	v, _ := p.Value(name)
	if s := ToString(v); s != "" {
		return s
	}
	// flat payloads sometimes carry {"value": ..} wrapped scalars
	return UnwrapAddress(v)
}

// Address returns an address field with optional wrappers removed
func (p *Payload) Address(name string) string {
	v, _ := p.Value(name)
	return UnwrapAddress(v)
}

// Values decodes every field, skipping those that fail
func (p *Payload) Values() map[string]interface{} {
	res := make(map[string]interface{}, len(p.fields))
	for name := range p.fields {
		if v, ok := p.Value(name); ok {
			res[name] = v
		}
	}
	return res
}

// DecodeBase64JSON decodes an arbitrary base64 JSON document, numbers are kept as json.Number
func DecodeBase64JSON(s string) (interface{}, bool) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	v, err := decodePlain(data)
	if err != nil {
		return nil, false
	}
	return v, true
}

func decodePlain(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// IsCadence reports whether a plain decoded document looks like a JSON-Cadence value
func IsCadence(v interface{}) bool {
	m, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	typ, ok := m["type"].(string)
	if !ok {
		return false
	}
	_, hasValue := m["value"]
	return hasValue || typ == "Void"
}
