package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fintrack/pkg/finance"
	"github.com/dmitrymomot/fintrack/pkg/validator"
)

var (
	errEmptyPayload = errors.New("payload is empty")
	errUnknownForm  = errors.New("unknown form")
	errBadValue     = errors.New("bad value")
)

// payload is the document read from the input file. JSON is valid YAML, so
// one decoder serves both.
type payload struct {
	Form        string               `yaml:"form"`
	Lang        string               `yaml:"lang"`
	Today       string               `yaml:"today"`
	Values      values               `yaml:"values"`
	Categories  []finance.Category   `yaml:"categories"`
	Category    *finance.Category    `yaml:"category"`
	Transaction *finance.Transaction `yaml:"transaction"`
}

func readPayload(path string, stdin io.Reader) (payload, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return payload{}, fmt.Errorf("read payload: %w", err)
	}
	return parsePayload(raw)
}

func parsePayload(raw []byte) (payload, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return payload{}, errEmptyPayload
	}
	var p payload
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return payload{}, fmt.Errorf("parse payload: %w", err)
	}
	p.Form = strings.ToLower(strings.TrimSpace(p.Form))
	if p.Form == "" {
		return payload{}, fmt.Errorf("%w: form is not set", errUnknownForm)
	}
	return p, nil
}

// values holds the raw inputs of a form keyed by field name.
type values map[string]any

// setString calls set when key is present. Null counts as an empty input.
func (v values) setString(key string, set func(string)) error {
	raw, ok := v[key]
	if !ok {
		return nil
	}
	val := validator.Of(raw)
	if val.IsNull() {
		set("")
		return nil
	}
	s, ok := val.AsString()
	if !ok {
		return fmt.Errorf("%w: %s must be a string, got %s", errBadValue, key, val.Kind())
	}
	set(s)
	return nil
}

// setNumber calls set when key is present. Numeric strings are parsed and an
// empty input counts as zero, like a cleared number field.
func (v values) setNumber(key string, set func(float64)) error {
	raw, ok := v[key]
	if !ok {
		return nil
	}
	val := validator.Of(raw)
	if n, ok := val.AsNumber(); ok {
		set(n)
		return nil
	}
	if val.IsNull() {
		set(0)
		return nil
	}
	if s, ok := val.AsString(); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			set(0)
			return nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number: %w", errBadValue, key, err)
		}
		set(n)
		return nil
	}
	return fmt.Errorf("%w: %s must be a number, got %s", errBadValue, key, val.Kind())
}
