// Package cadence decodes the JSON-Cadence interchange format used by Flow
// access nodes for event payloads, script arguments and script results.
package cadence

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotCadence  = errors.New("not a json-cadence value")
	ErrUnsupported = errors.New("unsupported json-cadence type")
)

// Raw is a single JSON-Cadence value, {"type": ..., "value": ...}
type Raw struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

type compositeValue struct {
	Id     string       `json:"id"`
	Fields []namedValue `json:"fields"`
}

type namedValue struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type keyValue struct {
	Key   json.RawMessage `json:"key"`
	Value json.RawMessage `json:"value"`
}

func encodeString(typ, val string) Raw {
	b, _ := json.Marshal(val)
	return Raw{Type: typ, Value: b}
}

// Address builds an Address argument
func Address(addr string) Raw {
	return encodeString("Address", addr)
}

// UInt64 builds a UInt64 argument, ids are carried as decimal strings
func UInt64(id string) Raw {
	return encodeString("UInt64", id)
}

func String(s string) Raw {
	return encodeString("String", s)
}

var stringTypes = map[string]bool{
	"String": true, "Character": true, "Address": true,
	"Fix64": true, "UFix64": true,
	"Int": true, "Int8": true, "Int16": true, "Int32": true, "Int64": true, "Int128": true, "Int256": true,
	"UInt": true, "UInt8": true, "UInt16": true, "UInt32": true, "UInt64": true, "UInt128": true, "UInt256": true,
	"Word8": true, "Word16": true, "Word32": true, "Word64": true, "Word128": true, "Word256": true,
}

var compositeTypes = map[string]bool{
	"Struct": true, "Resource": true, "Event": true, "Contract": true, "Enum": true, "Attachment": true,
}

// Decode converts a JSON-Cadence value into plain Go values. Scalars become
// strings (numbers keep their exact textual form), composites and
// dictionaries become map[string]interface{}, arrays []interface{}, and an
// empty optional nil.
func Decode(data json.RawMessage) (interface{}, error) {
	var r Raw
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	if r.Type == "" {
		return nil, ErrNotCadence
	}
	return decodeRaw(r)
}

func decodeRaw(r Raw) (interface{}, error) {
	switch {
	case stringTypes[r.Type]:
		var s string
		if err := json.Unmarshal(r.Value, &s); err != nil {
			return nil, fmt.Errorf("%s: %w", r.Type, err)
		}
		return s, nil
	case compositeTypes[r.Type]:
		var c compositeValue
		if err := json.Unmarshal(r.Value, &c); err != nil {
			return nil, fmt.Errorf("%s: %w", r.Type, err)
		}
		return decodeFields(c.Fields)
	}

	switch r.Type {
	case "Void":
		return nil, nil
	case "Optional":
		if isNull(r.Value) {
			return nil, nil
		}
		return Decode(r.Value)
	case "Bool":
		var b bool
		if err := json.Unmarshal(r.Value, &b); err != nil {
			return nil, err
		}
		return b, nil
	case "Array":
		var items []json.RawMessage
		if err := json.Unmarshal(r.Value, &items); err != nil {
			return nil, err
		}
		res := make([]interface{}, 0, len(items))
		for _, it := range items {
			v, err := Decode(it)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case "Dictionary":
		var kvs []keyValue
		if err := json.Unmarshal(r.Value, &kvs); err != nil {
			return nil, err
		}
		res := make(map[string]interface{}, len(kvs))
		for _, kv := range kvs {
			k, err := Decode(kv.Key)
			if err != nil {
				return nil, err
			}
			v, err := Decode(kv.Value)
			if err != nil {
				return nil, err
			}
			res[ToString(k)] = v
		}
		return res, nil
	case "Type":
		var t struct {
			StaticType json.RawMessage `json:"staticType"`
		}
		if err := json.Unmarshal(r.Value, &t); err != nil {
			return nil, err
		}
		return map[string]interface{}{"typeID": staticTypeID(t.StaticType)}, nil
	case "Path", "Capability", "InclusiveRange":
		var v map[string]interface{}
		if err := json.Unmarshal(r.Value, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, r.Type)
}

func decodeFields(fields []namedValue) (map[string]interface{}, error) {
	res := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		v, err := Decode(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		res[f.Name] = v
	}
	return res, nil
}

// staticTypeID handles both the legacy string form and the {"typeID": ...} object form
func staticTypeID(data json.RawMessage) string {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	var obj struct {
		TypeID string `json:"typeID"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		return obj.TypeID
	}
	return ""
}

func isNull(data json.RawMessage) bool {
	d := bytes.TrimSpace(data)
	return len(d) == 0 || bytes.Equal(d, []byte("null"))
}

// ToString renders a decoded scalar as text, "" for nil or non scalars
func ToString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// UnwrapAddress reads an address that may sit under zero, one or two
// {"value": ...} wrappers.
func UnwrapAddress(v interface{}) string {
	for i := 0; i < 3; i++ {
		switch t := v.(type) {
		case string:
			return t
		case map[string]interface{}:
			v = t["value"]
		default:
			return ""
		}
	}
	return ""
}

// Lookup walks nested maps by key, nil when any step is missing
func Lookup(v interface{}, path ...string) interface{} {
	for _, p := range path {
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil
		}
		v = m[p]
	}
	return v
}

// DecodeBase64 decodes a base64 encoded JSON-Cadence value
func DecodeBase64(s string) (interface{}, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
