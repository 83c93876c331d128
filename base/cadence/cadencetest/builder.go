// Package cadencetest builds JSON-Cadence payloads for tests.
package cadencetest

import (
	"encoding/base64"
	"encoding/json"

	"github.com/x-xyz/salesbot/base/cadence"
)

// Field is one named event field
type Field struct {
	Name  string
	Value cadence.Raw
}

func F(name string, v cadence.Raw) Field {
	return Field{Name: name, Value: v}
}

func UInt64(v string) cadence.Raw  { return cadence.UInt64(v) }
func String(v string) cadence.Raw  { return cadence.String(v) }
func Address(v string) cadence.Raw { return cadence.Address(v) }

func UFix64(v string) cadence.Raw {
	b, _ := json.Marshal(v)
	return cadence.Raw{Type: "UFix64", Value: b}
}

func Bool(v bool) cadence.Raw {
	b, _ := json.Marshal(v)
	return cadence.Raw{Type: "Bool", Value: b}
}

// Optional wraps v, a nil v gives an empty optional
func Optional(v *cadence.Raw) cadence.Raw {
	if v == nil {
		return cadence.Raw{Type: "Optional", Value: json.RawMessage("null")}
	}
	b, _ := json.Marshal(v)
	return cadence.Raw{Type: "Optional", Value: b}
}

func OptionalAddress(addr string) cadence.Raw {
	a := cadence.Address(addr)
	return Optional(&a)
}

func Type(typeID string) cadence.Raw {
	b, _ := json.Marshal(map[string]interface{}{
		"staticType": map[string]string{"kind": "Resource", "typeID": typeID},
	})
	return cadence.Raw{Type: "Type", Value: b}
}

func Dictionary(kvs map[string]string) cadence.Raw {
	type kv struct {
		Key   cadence.Raw `json:"key"`
		Value cadence.Raw `json:"value"`
	}
	items := []kv{}
	for k, v := range kvs {
		items = append(items, kv{cadence.String(k), cadence.String(v)})
	}
	b, _ := json.Marshal(items)
	return cadence.Raw{Type: "Dictionary", Value: b}
}

func Composite(kind, id string, fields ...Field) cadence.Raw {
	type named struct {
		Name  string      `json:"name"`
		Value cadence.Raw `json:"value"`
	}
	fs := make([]named, 0, len(fields))
	for _, f := range fields {
		fs = append(fs, named{f.Name, f.Value})
	}
	b, _ := json.Marshal(map[string]interface{}{"id": id, "fields": fs})
	return cadence.Raw{Type: kind, Value: b}
}

// Event returns the base64 payload of an event composite
func Event(id string, fields ...Field) string {
	return Encode(Composite("Event", id, fields...))
}

// Encode marshals and base64-encodes v
func Encode(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}
