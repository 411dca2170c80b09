package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dephea/bitrix-task/internal/core/domain"
)

var jsonNull = []byte("null")

// code holds a small provider value that may be sent as a JSON string or number.
type code string

func (c *code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = code(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*c = code(n.String())
	return nil
}

// flexInt is an integer id the provider may quote. Empty strings count as unset.
type flexInt struct {
	value int64
	set   bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var c code
	if err := c.UnmarshalJSON(data); err != nil {
		return err
	}
	if c == "" {
		*f = flexInt{}
		return nil
	}
	value, err := strconv.ParseInt(string(c), 10, 64)
	if err != nil {
		return fmt.Errorf("expected integer id, got %q", string(c))
	}
	*f = flexInt{value: value, set: true}
	return nil
}

func (f flexInt) ptr() *int64 {
	if !f.set {
		return nil
	}
	value := f.value
	return &value
}

// envelope is the outer shape of every provider answer.
type envelope struct {
	Result json.RawMessage `json:"result"`
	Total  *int            `json:"total"`
}

func decodeEnvelope(body []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, &domain.MappingError{Reason: "response is not a json object: " + err.Error()}
	}
	return env, nil
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func decodeText(raw json.RawMessage) (*string, error) {
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// decodeCode stringifies an integer-like value for provider fields that expect "1" rather than 1.
func decodeCode(raw json.RawMessage) (*string, error) {
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, nil
	}
	var id flexInt
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, err
	}
	if !id.set {
		return nil, nil
	}
	s := strconv.FormatInt(id.value, 10)
	return &s, nil
}

func decodeID(raw json.RawMessage) (*int64, error) {
	var id flexInt
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, err
	}
	return id.ptr(), nil
}
