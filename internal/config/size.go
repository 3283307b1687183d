package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Size is a byte count that accepts plain integers or humanized strings
// such as "500", "4 MiB" or "1GiB". It satisfies pflag.Value.
type Size int64

// ParseSize parses a byte count.
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty size", ErrInvalidSize)
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidSize, s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidSize, s)
	}
	return Size(n), nil
}

func (s Size) String() string {
	return humanize.IBytes(uint64(s))
}

// Set implements pflag.Value.
func (s *Size) Set(v string) error {
	n, err := ParseSize(v)
	if err != nil {
		return err
	}
	*s = n
	return nil
}

// Type implements pflag.Value.
func (s *Size) Type() string { return "size" }

func (s *Size) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}

// UnmarshalTOML accepts both integer and string sizes.
func (s *Size) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		if v < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidSize, v)
		}
		*s = Size(v)
		return nil
	case string:
		return s.Set(v)
	default:
		return fmt.Errorf("%w: unexpected %T", ErrInvalidSize, v)
	}
}

// UnmarshalYAML accepts both integer and string sizes.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidSize, node.Line)
	}
	return s.Set(node.Value)
}
