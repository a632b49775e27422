package directory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Country is one entry of a fetched directory list.
//
// ID is generated per fetch, so it identifies a row within one list snapshot
// only. The same country receives a different ID after every refresh.
type Country struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Capital string `json:"capital,omitempty"`
}

// envelope is the response body returned by the directory endpoint:
//
//	{
//	  "error": false,
//	  "msg": "countries and capitals retrieved",
//	  "data": [ { "name": "Afghanistan", "capital": "Kabul", ... }, ... ]
//	}
//
// Only "data" and each entry's "name" are required.
type envelope struct {
	Error bool            `json:"error"`
	Msg   string          `json:"msg"`
	Data  json.RawMessage `json:"data"`
}

type entry struct {
	Name    string `json:"name"`
	Capital string `json:"capital"`
}

var (
	// ErrMissingData is returned when the envelope has no "data" list
	ErrMissingData = errors.New(`response has no "data" field`)
	// ErrDataNotList is returned when "data" is present but not an array
	ErrDataNotList = errors.New(`"data" field is not a list`)
)

// DecodeCountries parses a directory response body into countries, assigning
// each one an ID from newID. Entries with a blank name are skipped. The order
// of the response is preserved.
func DecodeCountries(body []byte, newID func() string) ([]Country, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if env.Error {
		return nil, fmt.Errorf("directory reported an error: %q", env.Msg)
	}

	raw := bytes.TrimSpace(env.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, ErrMissingData
	}
	if raw[0] != '[' {
		return nil, ErrDataNotList
	}

	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("invalid country entry: %w", err)
	}

	countries := make([]Country, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		countries = append(countries, Country{
			ID:      newID(),
			Name:    e.Name,
			Capital: e.Capital,
		})
	}

	return countries, nil
}

// Names returns the country names in list order.
func Names(countries []Country) []string {
	names := make([]string, len(countries))
	for i, c := range countries {
		names[i] = c.Name
	}
	return names
}
