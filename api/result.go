package api

import (
	"bytes"
	"encoding/json"
)

//Result is a decoded API response. A response that isn't a JSON object or array
//is an empty Result rather than an error.
type Result struct {
	raw   json.RawMessage
	value interface{}
}

//EmptyResult returns a Result with no data
func EmptyResult() *Result {
	return &Result{}
}

//NewResult decodes body into a Result
func NewResult(body []byte) *Result {
	if !json.Valid(body) {
		return EmptyResult()
	}

	d := json.NewDecoder(bytes.NewReader(body))
	d.UseNumber()

	var v interface{}
	if err := d.Decode(&v); err != nil {
		return EmptyResult()
	}

	switch val := v.(type) {
	case map[string]interface{}:
		if len(val) == 0 {
			return EmptyResult()
		}
	case []interface{}:
		if len(val) == 0 {
			return EmptyResult()
		}
	default:
		return EmptyResult()
	}

	return &Result{raw: json.RawMessage(bytes.TrimSpace(body)), value: v}
}

//Empty returns true if the response contained no data
func (r *Result) Empty() bool {
	return r == nil || r.value == nil
}

//Value returns the decoded response, either a map[string]interface{} or a []interface{}.
//Numbers are json.Number.
func (r *Result) Value() interface{} {
	if r == nil {
		return nil
	}
	return r.value
}

//Map returns the response as an object, or nil if it's not one
func (r *Result) Map() map[string]interface{} {
	m, _ := r.Value().(map[string]interface{})
	return m
}

//Slice returns the response as an array, or nil if it's not one
func (r *Result) Slice() []interface{} {
	s, _ := r.Value().([]interface{})
	return s
}

//Decode unmarshals the response into v. v is untouched if r is empty
func (r *Result) Decode(v interface{}) error {
	if r.Empty() {
		return nil
	}
	return json.Unmarshal(r.raw, v)
}

//MarshalJSON returns the original response, or an empty array if r is empty
func (r *Result) MarshalJSON() ([]byte, error) {
	if r.Empty() {
		return []byte("[]"), nil
	}
	return r.raw, nil
}
