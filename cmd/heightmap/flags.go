package main

import (
	"fmt"
	"strconv"
	"strings"
)

// thresholdsFlag parses a comma-separated list of floats, e.g. "0.3,0.5,0.8".
type thresholdsFlag []float64

func (f *thresholdsFlag) String() string {
	if f == nil {
		return ""
	}
	parts := make([]string, len(*f))
	for i, v := range *f {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (f *thresholdsFlag) Set(s string) error {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fmt.Errorf("parse threshold %q: %w", part, err)
		}
		out = append(out, v)
	}
	*f = out
	return nil
}
