package config

import "fmt"

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TableError represents an invalid custom table definition.
type TableError struct {
	Table   string
	Message string
	Err     error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("table %q: %s", e.Table, e.Message)
}

func (e *TableError) Unwrap() error {
	return e.Err
}
