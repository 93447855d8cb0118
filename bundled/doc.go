// Package bundled provides ready-made converters for common scalar types and
// a composed, pattern-configured timestamp converter.
package bundled
