// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scytl

import "errors"

// The five failure kinds of the extraction pipeline. Every error returned
// by this package wraps exactly one of them, so callers dispatch with
// errors.Is while the message carries the worksheet and row position.
// All of them are fatal: a single violation aborts the whole extraction
// and no partial dataset is returned.
var (
	// ErrMissingNode reports an expected element, child, or text content
	// that is absent.
	ErrMissingNode = errors.New("missing node")

	// ErrTypeMismatch reports a datum whose declared type attribute is
	// not the expected one.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrSchemaViolation reports a style/column-name/type combination
	// that does not match the known schema, including unrecognized
	// header names.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrParseFailure reports text that does not parse as the expected
	// numeric form, including trailing garbage.
	ErrParseFailure = errors.New("parse failure")

	// ErrWidthMismatch reports cell counts that disagree with the header
	// or tuple length the sheet declared.
	ErrWidthMismatch = errors.New("width mismatch")
)
