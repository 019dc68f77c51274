// Package extract recovers a JSON array of objects embedded in free-form
// model output.
package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedOutput is returned when no JSON array of objects can be found.
var ErrMalformedOutput = errors.New("malformed generation output")

// Field is one key/value pair of an Object.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Object is a JSON object that remembers the order of its keys, so tasks are
// re-serialized exactly as the model wrote them.
type Object []Field

// Get returns the raw value stored under key.
func (o Object) Get(key string) (json.RawMessage, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Text returns the value under key as display text: strings are unquoted,
// other values keep their JSON form, missing keys yield "".
func (o Object) Text(key string) string {
	raw, ok := o.Get(key)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if bytes.Equal(raw, []byte("null")) {
		return ""
	}
	return string(raw)
}

// MarshalJSON writes the fields in their original order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(f.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts only JSON objects; null is rejected. A
// repeated key keeps its first position and its last value.
func (o *Object) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	out := Object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return err
		}
		replaced := false
		for i := range out {
			if out[i].Key == key {
				out[i].Value = val
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, Field{Key: key, Value: val})
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*o = out
	return nil
}

// JSONArray scans raw for the first syntactically valid JSON array of
// objects. Every '[' is tried in order: a balanced-bracket scan (aware of
// string literals and escapes) finds the candidate's end and the candidate is
// decoded. Prose containing stray brackets before or after the payload is
// skipped. An empty array is only returned when no non-empty one exists.
func JSONArray(raw string) ([]Object, error) {
	var empty []Object
	closes := map[int]int{}
	sawOpen := false
	for i := 0; i < len(raw); i++ {
		if raw[i] != '[' {
			continue
		}
		sawOpen = true
		end, ok := closes[i]
		if !ok {
			matchBrackets(raw, i, closes)
			end = closes[i]
		}
		if end < 0 {
			continue
		}
		var objs []Object
		if err := json.Unmarshal([]byte(raw[i:end+1]), &objs); err != nil {
			continue
		}
		if len(objs) == 0 {
			if empty == nil {
				empty = []Object{}
			}
			continue
		}
		return objs, nil
	}
	if empty != nil {
		return empty, nil
	}
	if !sawOpen {
		return nil, fmt.Errorf("%w: no JSON array found", ErrMalformedOutput)
	}
	return nil, fmt.Errorf("%w: no valid JSON array of objects found", ErrMalformedOutput)
}

// matchBrackets scans from the '[' at start until it is closed and records in
// closes the index of the ']' for start and for every '[' met outside a
// string on the way, or -1 for those left open at the end of s. A '[' met
// outside a string would scan identically from its own position, so each is
// scanned at most once.
func matchBrackets(s string, start int, closes map[int]int) {
	var open []int
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			open = append(open, i)
		case ']':
			top := open[len(open)-1]
			open = open[:len(open)-1]
			closes[top] = i
			if len(open) == 0 {
				return
			}
		}
	}
	for _, o := range open {
		closes[o] = -1
	}
}
