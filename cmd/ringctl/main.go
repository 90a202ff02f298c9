// SPDX-License-Identifier: MIT

// This binary is the ringctl command line tool: finite field tables, matrix
// inversion and products over any supported ring, block assembly, polynomial
// evaluation and factorization in quadratic integer rings.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/colour"
	glog "github.com/golang/glog"
	"github.com/google/subcommands"

	"github.com/katalvlaran/algebra/gf"
	"github.com/katalvlaran/algebra/internal/config"
	"github.com/katalvlaran/algebra/matrix"
	"github.com/katalvlaran/algebra/poly"
	"github.com/katalvlaran/algebra/quadratic"
)

// The current version, displayed via the `version` subcommand.
const ringctlVersion string = "0.1.0"

// Output formats for matrices.
const (
	formatText  = "text"
	formatLaTeX = "latex"
)

// fieldCmd handles CLI options for the field command.
type fieldCmd struct {
	out    io.Writer
	p, n   int
	symbol string
	tables bool
}

func (*fieldCmd) Name() string     { return "field" }
func (*fieldCmd) Synopsis() string { return "describes GF(p^n) and optionally prints its power table" }
func (*fieldCmd) Usage() string {
	return `Usage: ringctl field --p=<prime> [--n=<degree>] [--symbol=<name>] [--tables]

Examples:
  Show the defining polynomial of GF(2^8):
    $ ringctl field --p=2 --n=8

  List every power of the generator of GF(3^2), written in "a":
    $ ringctl field --p=3 --n=2 --symbol=a --tables

Flags:
`
}
func (c *fieldCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.p, "p", 2, "The characteristic.")
	f.IntVar(&c.n, "n", 1, "The degree of the extension.")
	f.StringVar(&c.symbol, "symbol", gf.DefaultSymbol, "The variable used to print elements.")
	f.BoolVar(&c.tables, "tables", false, "Print the power and logarithm of every nonzero element.")
}

func (c *fieldCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		glog.Errorf("Symbol must be non-empty")
		return subcommands.ExitUsageError
	}
	f, err := gf.NewPackedField(c.p, c.n, gf.WithSymbol(c.symbol))
	if err != nil {
		glog.Errorf("Failed to build field: %v", err)
		return subcommands.ExitFailure
	}

	colour.Fprintf(c.out, "^B%s^R\n", f)
	fmt.Fprintf(c.out, "  order:      %d\n", f.Order())
	fmt.Fprintf(c.out, "  polynomial: %s\n", f.PolynomialString())
	fmt.Fprintf(c.out, "  generator:  %s\n", f.Format(f.Generator()))
	if c.tables {
		colour.Fprintf(c.out, "^2%6s  %s^R\n", "i", c.symbol+"^i")
		for i := 0; i < f.Order()-1; i++ {
			fmt.Fprintf(c.out, "%6d  %s\n", i, f.Format(f.Exp(i)))
		}
	}

	return subcommands.ExitSuccess
}

// matrixFlags are shared by the subcommands that read a job file.
type matrixFlags struct {
	out    io.Writer
	format string
}

func (m *matrixFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&m.format, "format", formatText, `Output format: "text" or "latex".`)
}

// open loads the job file and binds it to its ring.
func (m *matrixFlags) open(path string) (*config.Job, operations, bool) {
	if m.format != formatText && m.format != formatLaTeX {
		glog.Errorf("Unknown output format %q", m.format)
		return nil, nil, false
	}
	job, err := config.Load(path)
	if err != nil {
		glog.Errorf("Failed to load job: %v", err)
		return nil, nil, false
	}
	ops, err := open(job)
	if err != nil {
		glog.Errorf("Failed to build ring: %v", err)
		return nil, nil, false
	}

	return job, ops, true
}

// print writes a heading and the rendered matrix.
func (m *matrixFlags) print(heading string, job *config.Job, d *matrix.Dense[string]) {
	colour.Fprintf(m.out, "^B%s^R over %s\n", heading, job.Ring)
	if m.format == formatLaTeX {
		fmt.Fprintln(m.out, d.LaTeX())
		return
	}
	fmt.Fprint(m.out, d.String())
}

// invertCmd handles CLI options for the invert command.
type invertCmd struct {
	matrixFlags
	check bool
}

func (*invertCmd) Name() string     { return "invert" }
func (*invertCmd) Synopsis() string { return "inverts a matrix from a job file" }
func (*invertCmd) Usage() string {
	return `Usage: ringctl invert [--format=text|latex] [--check] <job_file> <matrix>

Example:
  Invert matrix "a" of job.yaml and verify the result:
    $ ringctl invert --check job.yaml a

Flags:
`
}
func (c *invertCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.BoolVar(&c.check, "check", false, "Multiply the result back and compare with the identity. Exact, so not useful over the reals.")
}

func (c *invertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		glog.Errorf("Expected a job file and a matrix name")
		return subcommands.ExitUsageError
	}
	job, ops, ok := c.open(f.Arg(0))
	if !ok {
		return subcommands.ExitFailure
	}
	inv, err := ops.invert(f.Arg(1), c.check)
	if err != nil {
		glog.Errorf("Failed to invert: %v", err)
		return subcommands.ExitFailure
	}
	c.print("inverse of "+f.Arg(1), job, inv)

	return subcommands.ExitSuccess
}

// multiplyCmd handles CLI options for the multiply command.
type multiplyCmd struct {
	matrixFlags
}

func (*multiplyCmd) Name() string     { return "multiply" }
func (*multiplyCmd) Synopsis() string { return "multiplies matrices from a job file, left to right" }
func (*multiplyCmd) Usage() string {
	return `Usage: ringctl multiply [--format=text|latex] <job_file> <matrix> <matrix>...

Flags:
`
}
func (c *multiplyCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *multiplyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 3 {
		glog.Errorf("Expected a job file and at least two matrix names")
		return subcommands.ExitUsageError
	}
	job, ops, ok := c.open(f.Arg(0))
	if !ok {
		return subcommands.ExitFailure
	}
	names := f.Args()[1:]
	prod, err := ops.multiply(names)
	if err != nil {
		glog.Errorf("Failed to multiply: %v", err)
		return subcommands.ExitFailure
	}
	c.print(strings.Join(names, "·"), job, prod)

	return subcommands.ExitSuccess
}

// blockCmd handles CLI options for the block command.
type blockCmd struct {
	matrixFlags
}

func (*blockCmd) Name() string     { return "block" }
func (*blockCmd) Synopsis() string { return "assembles the block layout of a job file" }
func (*blockCmd) Usage() string {
	return `Usage: ringctl block [--format=text|latex] <job_file>

Flags:
`
}
func (c *blockCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *blockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		glog.Errorf("Expected a job file")
		return subcommands.ExitUsageError
	}
	job, ops, ok := c.open(f.Arg(0))
	if !ok {
		return subcommands.ExitFailure
	}
	m, err := ops.block()
	if err != nil {
		glog.Errorf("Failed to assemble blocks: %v", err)
		return subcommands.ExitFailure
	}
	c.print("block matrix", job, m)

	return subcommands.ExitSuccess
}

// polyCmd handles CLI options for the poly command.
type polyCmd struct {
	out     io.Writer
	modulus int
	at      int
}

func (*polyCmd) Name() string     { return "poly" }
func (*polyCmd) Synopsis() string { return "normalizes a polynomial and evaluates it modulo m" }
func (*polyCmd) Usage() string {
	return `Usage: ringctl poly [--mod=<m> --at=<x>] <polynomial>

Example:
  $ ringctl poly --mod=7 --at=2 "3x^2 - x + 5"

Flags:
`
}
func (c *polyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.modulus, "mod", 0, "Evaluate modulo this value. Zero skips evaluation.")
	f.IntVar(&c.at, "at", 0, "The point to evaluate at.")
}

func (c *polyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		glog.Errorf("Expected a polynomial")
		return subcommands.ExitUsageError
	}
	if c.modulus < 0 {
		glog.Errorf("Modulus must be positive, got %d", c.modulus)
		return subcommands.ExitUsageError
	}
	p, err := poly.Parse(strings.Join(f.Args(), " "))
	if err != nil {
		glog.Errorf("Failed to parse polynomial: %v", err)
		return subcommands.ExitFailure
	}

	colour.Fprintf(c.out, "^B%s^R\n", p)
	fmt.Fprintf(c.out, "  degree: %d\n", p.Degree())
	if c.modulus > 0 {
		fmt.Fprintf(c.out, "  p(%d) mod %d = %d\n", c.at, c.modulus, poly.Evaluate(p, c.at, c.modulus))
	}

	return subcommands.ExitSuccess
}

// factorCmd handles CLI options for the factor command.
type factorCmd struct {
	out   io.Writer
	alpha int
	bound int
}

func (*factorCmd) Name() string { return "factor" }
func (*factorCmd) Synopsis() string {
	return "lists the factorizations of an integer in Z[√α]"
}
func (*factorCmd) Usage() string {
	return `Usage: ringctl factor [--alpha=<α>] [--bound=<n>] <number>

Example:
  Show that 6 factors two ways in Z[√-5]:
    $ ringctl factor --alpha=-5 6

Flags:
`
}
func (c *factorCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.alpha, "alpha", -5, "The non-square α of Z[√α].")
	f.IntVar(&c.bound, "bound", 3, "Search irreducible elements a + b√α with 0 <= a, b <= bound.")
}

func (c *factorCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		glog.Errorf("Expected one number")
		return subcommands.ExitUsageError
	}
	number, err := strconv.Atoi(f.Arg(0))
	if err != nil || number < 2 {
		glog.Errorf("Expected an integer >= 2, got %q", f.Arg(0))
		return subcommands.ExitUsageError
	}
	if c.alpha == 0 || c.bound < 1 {
		glog.Errorf("Need a non-zero alpha and a positive bound")
		return subcommands.ExitUsageError
	}

	r := quadratic.New(c.alpha)
	irreducibles := quadratic.IrreducibleElements(r, c.bound)
	glog.V(1).Infof("factor: %d irreducible candidates in %v", len(irreducibles), r)
	factors := quadratic.Factors(r, number, irreducibles)

	colour.Fprintf(c.out, "^B%d^R in %s\n", number, r)
	fmt.Fprintf(c.out, "  split:   %s\n", join(r, quadratic.FindFactors(r, number), ", "))
	fmt.Fprintf(c.out, "  factors: %s\n", join(r, factors, ", "))
	for _, d := range quadratic.Factorizations(r, number, factors) {
		fmt.Fprintf(c.out, "  = %s\n", join(r, d, " · "))
	}

	return subcommands.ExitSuccess
}

func join(r quadratic.Ring, zs []quadratic.Element, sep string) string {
	parts := make([]string, len(zs))
	for i, z := range zs {
		parts[i] = r.Format(z)
	}

	return strings.Join(parts, sep)
}

// versionCmd handles CLI options for the version command.
type versionCmd struct{}

func (*versionCmd) Name() string           { return "version" }
func (*versionCmd) Synopsis() string       { return "prints the current version" }
func (*versionCmd) Usage() string          { return "Usage: ringctl version" }
func (*versionCmd) SetFlags(*flag.FlagSet) {}
func (*versionCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	fmt.Printf("ringctl version %s\n", ringctlVersion)
	return subcommands.ExitSuccess
}

func main() {
	flag.Parse()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&fieldCmd{out: os.Stdout}, "fields")
	subcommands.Register(&polyCmd{out: os.Stdout}, "fields")
	subcommands.Register(&invertCmd{matrixFlags: matrixFlags{out: os.Stdout}}, "matrices")
	subcommands.Register(&multiplyCmd{matrixFlags: matrixFlags{out: os.Stdout}}, "matrices")
	subcommands.Register(&blockCmd{matrixFlags: matrixFlags{out: os.Stdout}}, "matrices")
	subcommands.Register(&factorCmd{out: os.Stdout}, "rings")
	subcommands.Register(&versionCmd{}, "")

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
