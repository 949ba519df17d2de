package config

import (
	"fmt"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Parse converts command line values to the type of the field's default.
// List fields also accept one semicolon separated value.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: value is required", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return values[0], nil
	case int:
		n, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q", f.Key, values[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean %q", f.Key, values[0])
		}
		return b, nil
	case []string:
		if len(values) == 1 {
			values = strings.Split(values[0], ";")
		}
		return lo.Compact(lo.Map(values, func(s string, _ int) string {
			return strings.TrimSpace(s)
		})), nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", f.Key, f.Type())
	}
}

// Closest returns the registered key nearest to k.
func Closest(k string) string {
	return lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
}
