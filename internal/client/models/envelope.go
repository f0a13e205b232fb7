package models

import "encoding/json"

// Envelope is the common wrapper of every backend response.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Success *bool           `json:"success,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// OK reports whether the envelope denotes success: code 200 or an explicit
// success flag.
func (e *Envelope) OK() bool {
	if e.Code == 200 {
		return true
	}
	return e.Success != nil && *e.Success
}

// Page is a paginated list.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
