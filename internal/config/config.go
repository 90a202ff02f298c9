// SPDX-License-Identifier: MIT

// Package config reads ringctl job files.
//
// A job names one coefficient ring and a set of matrices over it, plus an
// optional block layout referring to those matrices by name:
//
//	ring:
//	  kind: gf
//	  characteristic: 3
//	  degree: 2
//	  symbol: a
//	matrices:
//	  m:
//	    - [1, a]
//	    - [2a + 1, 0]
//	blocks:
//	  - [m, m]
//
// Files are YAML decoded with sigs.k8s.io/yaml, so keys follow the json
// struct tags below and unknown keys are rejected. Entries may be written as
// YAML numbers or strings; how an entry is read depends on the ring kind (see
// Kind).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"sigs.k8s.io/yaml"
)

// Kind selects the coefficient ring of a job.
type Kind string

const (
	// KindIntegers is Z with int entries: "12", -3.
	KindIntegers Kind = "integers"
	// KindReals is R with float64 entries: "0.5", 2.
	KindReals Kind = "reals"
	// KindPrime is GF(p) with int entries reduced mod p.
	KindPrime Kind = "prime"
	// KindGF is GF(p^n) with entries written as polynomials in the field
	// symbol: "a^2 + 2a + 1".
	KindGF Kind = "gf"
	// KindQuadratic is Z[√α] with entries written as "a + b x", x standing
	// for √α.
	KindQuadratic Kind = "quadratic"
)

var kinds = []Kind{KindIntegers, KindReals, KindPrime, KindGF, KindQuadratic}

var (
	// ErrInvalidJob is the root of every job validation error.
	ErrInvalidJob = errors.New("config: invalid job")

	// ErrUnknownKind indicates an unsupported ring kind.
	ErrUnknownKind = fmt.Errorf("%w: unknown ring kind", ErrInvalidJob)

	// ErrUnknownMatrix indicates a reference to a matrix the job does not define.
	ErrUnknownMatrix = fmt.Errorf("%w: unknown matrix", ErrInvalidJob)

	// ErrEntry indicates a matrix entry that cannot be read in the job's ring.
	ErrEntry = fmt.Errorf("%w: bad entry", ErrInvalidJob)
)

// RingSpec describes the coefficient ring.
type RingSpec struct {
	Kind Kind `json:"kind"`

	// Characteristic is p for KindPrime and KindGF.
	Characteristic int `json:"characteristic,omitempty"`
	// Degree is n for KindGF; 0 means 1.
	Degree int `json:"degree,omitempty"`
	// Symbol is the variable used to write and print GF(p^n) elements.
	Symbol string `json:"symbol,omitempty"`
	// Polynomial overrides the Conway polynomial of a KindGF field with the
	// X^0..X^(n-1) coefficients of another primitive polynomial.
	Polynomial []int `json:"polynomial,omitempty"`

	// Alpha is α for KindQuadratic.
	Alpha int `json:"alpha,omitempty"`
}

// Entry is one matrix entry as written in the job file.
type Entry string

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (e *Entry) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*e = Entry(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%s is neither a string nor a number: %w", b, ErrEntry)
	}
	*e = Entry(n.String())

	return nil
}

// Job is a decoded job file.
type Job struct {
	Ring     RingSpec             `json:"ring"`
	Matrices map[string][][]Entry `json:"matrices"`
	Blocks   [][]string           `json:"blocks,omitempty"`
}

// Load reads and validates the job file at path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read job: %w", err)
	}
	job, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return job, nil
}

// Parse decodes and validates a YAML job.
func Parse(data []byte) (*Job, error) {
	var job Job
	if err := yaml.UnmarshalStrict(data, &job); err != nil {
		return nil, fmt.Errorf("config: decode job: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	return &job, nil
}

// Validate checks the parts of a job that do not depend on its ring: the
// kind, the parameters that kind needs, and the block layout. Entries are
// checked when matrices are decoded.
func (j *Job) Validate() error {
	if err := j.Ring.validate(); err != nil {
		return err
	}
	for _, row := range j.Blocks {
		if len(row) == 0 {
			return fmt.Errorf("blocks: empty row: %w", ErrInvalidJob)
		}
		for _, name := range row {
			if _, ok := j.Matrices[name]; !ok {
				return fmt.Errorf("blocks: %q: %w", name, ErrUnknownMatrix)
			}
		}
	}

	return nil
}

func (s RingSpec) validate() error {
	if !slices.Contains(kinds, s.Kind) {
		return fmt.Errorf("ring %q: %w", s.Kind, ErrUnknownKind)
	}
	switch s.Kind {
	case KindPrime, KindGF:
		if s.Characteristic < 2 {
			return fmt.Errorf("ring %s: characteristic %d: %w", s.Kind, s.Characteristic, ErrInvalidJob)
		}
		if s.Degree < 0 {
			return fmt.Errorf("ring %s: degree %d: %w", s.Kind, s.Degree, ErrInvalidJob)
		}
	case KindQuadratic:
		if s.Alpha == 0 {
			return fmt.Errorf("ring %s: alpha must be non-zero: %w", s.Kind, ErrInvalidJob)
		}
	}
	if s.Kind != KindGF && (s.Symbol != "" || len(s.Polynomial) > 0) {
		return fmt.Errorf("ring %s: symbol and polynomial only apply to %s: %w", s.Kind, KindGF, ErrInvalidJob)
	}

	return nil
}

// MatrixNames returns the names of the job's matrices in sorted order.
func (j *Job) MatrixNames() []string {
	names := make([]string, 0, len(j.Matrices))
	for name := range j.Matrices {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// String renders the ring for humans: "integers", "gf GF(3^2)", "quadratic Z[√-5]".
func (s RingSpec) String() string {
	var b strings.Builder
	b.WriteString(string(s.Kind))
	switch s.Kind {
	case KindPrime:
		fmt.Fprintf(&b, " GF(%d)", s.Characteristic)
	case KindGF:
		if d := s.degree(); d == 1 {
			fmt.Fprintf(&b, " GF(%d)", s.Characteristic)
		} else {
			fmt.Fprintf(&b, " GF(%d^%d)", s.Characteristic, d)
		}
	case KindQuadratic:
		fmt.Fprintf(&b, " Z[√%d]", s.Alpha)
	}

	return b.String()
}

func (s RingSpec) degree() int {
	if s.Degree == 0 {
		return 1
	}

	return s.Degree
}
