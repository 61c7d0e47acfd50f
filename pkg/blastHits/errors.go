package blastHits

import (
	"errors"
	"fmt"
)

// ErrInsufficientData marks an F read that lacks hits of one of the two competing classes
var ErrInsufficientData = errors.New("insufficient data")

// FieldError reports a missing or malformed column of a hit line
type FieldError struct {
	Field string
	Index int
	Count int
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("field %s[%d]: %v", e.Field, e.Index, e.Err)
	}
	return fmt.Sprintf("field %s[%d] missing: only %d fields", e.Field, e.Index, e.Count)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ParseError locates a FieldError or UnknownReferenceError inside a report
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type UnknownMonthError struct {
	Name   string
	Abbrev string
}

func (e *UnknownMonthError) Error() string {
	return fmt.Sprintf("unknown month %q in sample name %q", e.Abbrev, e.Name)
}

// SampleNameError reports a file name without a year marker digit
type SampleNameError struct {
	Name string
	Err  error
}

func (e *SampleNameError) Error() string {
	return fmt.Sprintf("bad sample name %q: %v", e.Name, e.Err)
}

func (e *SampleNameError) Unwrap() error { return e.Err }

// UnknownReferenceError reports single copy hits outside the known reference set
type UnknownReferenceError struct {
	Query string
}

func (e *UnknownReferenceError) Error() string {
	if e.Query == "" {
		return "hit line before any query"
	}
	return fmt.Sprintf("unknown single copy reference %q", e.Query)
}
