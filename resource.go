package xrm

import (
	"math"
	"strconv"
	"strings"
)

// InvalidInt is returned by Int64 when the resource value does not parse
// as a decimal integer
const InvalidInt int64 = math.MinInt64

// Resource is the outcome of a successful query. It carries the matched
// value and offers typed access to it.
type Resource struct {
	value string
}

// NewResource wraps a raw value string in a Resource
func NewResource(value string) *Resource {
	return &Resource{value: value}
}

// Value returns the matched value text. It returns "" on a nil or closed
// resource.
func (r *Resource) Value() string {
	if r == nil {
		return ""
	}
	return r.value
}

// Int64 parses the value as a decimal integer. It returns InvalidInt on a
// nil resource or when the value does not parse. The parse is strict:
// leading whitespace and trailing text both fail it.
func (r *Resource) Int64() int64 {
	if r == nil {
		return InvalidInt
	}
	n, err := strconv.ParseInt(r.value, 10, 64)
	if err != nil {
		return InvalidInt
	}
	return n
}

// Bool interprets the value as a truth value. A value that parses as an
// integer is true when nonzero. The words "true", "on", and "yes" are
// true, the words "false", "off", and "no" are false, compared without
// case. Everything else, including a nil resource, is false.
func (r *Resource) Bool() bool {
	if r == nil {
		return false
	}
	if n, err := strconv.ParseInt(r.value, 10, 64); err == nil {
		return n != 0
	}
	switch {
	case strings.EqualFold(r.value, "true"),
		strings.EqualFold(r.value, "on"),
		strings.EqualFold(r.value, "yes"):
		return true
	case strings.EqualFold(r.value, "false"),
		strings.EqualFold(r.value, "off"),
		strings.EqualFold(r.value, "no"):
		return false
	}
	return false
}

// Close releases the resource value. It is safe on a nil resource and may
// be called more than once. Accessors afterwards behave as on an empty
// value.
func (r *Resource) Close() error {
	if r == nil {
		return nil
	}
	r.value = ""
	return nil
}
