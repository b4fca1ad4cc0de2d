package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MovieID is a TMDb movie id that clients send either as a JSON number or a
// numeric string. null, "" and absent decode to 0.
type MovieID int64

func (m *MovieID) UnmarshalJSON(data []byte) error {
	raw, err := unquote(data)
	if err != nil {
		return err
	}
	if raw == "" || raw == "null" {
		*m = 0
		return nil
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*m = MovieID(n)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid movie id %q", raw)
	}
	*m = MovieID(int64(f))
	return nil
}

func (m MovieID) Int64() int64 {
	return int64(m)
}

// Rating is an optional review score. Numbers and numeric strings are kept;
// null, empty, zero and anything unparsable become "no rating".
type Rating struct {
	Value *float64
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	r.Value = nil

	raw, err := unquote(data)
	if err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	r.Value = &f
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if r.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*r.Value)
}

func unquote(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}
