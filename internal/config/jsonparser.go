// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package config

import (
	json "github.com/goccy/go-json"
)

// jsonParser is a koanf.Parser backed by goccy/go-json, used for .json
// config files.
type jsonParser struct{}

// Unmarshal parses JSON bytes into a nested map.
func (jsonParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Marshal renders a nested map as JSON bytes.
func (jsonParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return json.Marshal(m)
}
