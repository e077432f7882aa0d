package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	// KindSchema marks a required column/field missing from an input source.
	KindSchema Kind = iota
	// KindParse marks a field value that cannot be coerced to its required type.
	KindParse
	// KindStore marks a failed write or read against the relational store.
	KindStore
	// KindInternal marks an unexpected failure outside the classes above.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindSchema:
		return "schema"
	case KindParse:
		return "parse"
	case KindStore:
		return "store"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Pipeline stages reported alongside fatal errors.
const (
	StageNormalize = "normalization"
	StagePersist   = "persistence"
	StageAggregate = "aggregation"
	StageReport    = "reporting"
)

// AppError represents a fatal pipeline error with its kind and failing stage
type AppError struct {
	Kind    Kind
	Stage   string
	Source  string // input source or store operation the error belongs to
	Field   string // offending column/field, when known
	Row     int    // 1-based source row/element, 0 when not applicable
	Message string
	Err     error
}

func (e *AppError) Error() string {
	msg := e.Kind.String() + " error"
	if e.Stage != "" {
		msg += " in " + e.Stage
	}
	msg += ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewSchemaError reports a required column entirely absent from a source.
func NewSchemaError(source, column string) *AppError {
	return &AppError{
		Kind:    KindSchema,
		Stage:   StageNormalize,
		Source:  source,
		Field:   column,
		Message: fmt.Sprintf("%s: required column %q is missing", source, column),
	}
}

// NewParseError reports a value that cannot be coerced, naming field and row.
// Decoder-level failures pass row 0 and an empty field; the message then
// names the source alone.
func NewParseError(source string, row int, field string, err error) *AppError {
	msg := source
	if row > 0 {
		msg = fmt.Sprintf("%s row %d", msg, row)
	}
	if field != "" {
		msg = fmt.Sprintf("%s: field %q", msg, field)
	}
	return &AppError{
		Kind:    KindParse,
		Stage:   StageNormalize,
		Source:  source,
		Field:   field,
		Row:     row,
		Message: msg,
		Err:     err,
	}
}

// NewStoreError reports a failed store operation; the batch it belonged to
// has been rolled back by the time the caller sees this error.
func NewStoreError(op string, err error) *AppError {
	return &AppError{
		Kind:    KindStore,
		Stage:   StagePersist,
		Source:  op,
		Message: op,
		Err:     err,
	}
}

// NewAggregateError reports a failed dataset load feeding the KPI engine.
func NewAggregateError(op string, err error) *AppError {
	return &AppError{
		Kind:    KindStore,
		Stage:   StageAggregate,
		Source:  op,
		Message: op,
		Err:     err,
	}
}

// IsSchemaError checks if an error is a schema error
func IsSchemaError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindSchema
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindParse
}

// IsStoreError checks if an error is a store error
func IsStoreError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindStore
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Kind:    KindInternal,
		Message: "unexpected failure",
		Err:     err,
	}
}
