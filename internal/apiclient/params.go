package apiclient

import (
	"net/url"
	"strconv"
)

// Params builds upstream query strings, dropping zero values so the upstream
// defaults apply.
type Params struct {
	values url.Values
}

// NewParams returns an empty builder
func NewParams() *Params {
	return &Params{values: url.Values{}}
}

// Int sets key when v is positive
func (p *Params) Int(key string, v int) *Params {
	if v > 0 {
		p.values.Set(key, strconv.Itoa(v))
	}
	return p
}

// Flag sets key=true when v is set
func (p *Params) Flag(key string, v bool) *Params {
	if v {
		p.values.Set(key, "true")
	}
	return p
}

// String sets key when v is non-empty
func (p *Params) String(key, v string) *Params {
	if v != "" {
		p.values.Set(key, v)
	}
	return p
}

// Values returns the built query, nil when nothing was set
func (p *Params) Values() url.Values {
	if len(p.values) == 0 {
		return nil
	}
	return p.values
}
