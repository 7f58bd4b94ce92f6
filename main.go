package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/feliixx/gomutation/chart"
	"github.com/feliixx/gomutation/mutate"
	"github.com/feliixx/gomutation/residue"
	"github.com/jessevdk/go-flags"
)

const (
	version  = "0.1.0"
	toolName = "gomutation"
)

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	Query          `group:"query"`
	Batch          `group:"batch"`
	mutate.Options `group:"optional"`
	General        `group:"general"`
}

// Query struct to store args for codons analysed one by one
type Query struct {
	Codons []string `short:"c" long:"codon" value-name:"<codon>" description:"RNA codon to analyse, can be repeated. Remaining arguments are read as codons too"`
	Select string   `short:"s" long:"select" value-name:"<aa>" description:"One-letter code of the substitute to display. It is kept from one codon to the next unless it becomes the original amino acid"`
	Plot   string   `short:"p" long:"plot" value-name:"<filename>" description:"Write a chart of the substitution scores of the last codon. Format is taken from the extension: png, svg, pdf, eps, jpg, tif"`
}

// Batch struct to store args for batch mode
type Batch struct {
	Input  string `short:"i" long:"input" value-name:"<filename>" description:"File with one codon per line"`
	Output string `short:"o" long:"output" value-name:"<filename>" description:"Batch results filename, default is stdout"`
}

// General struct to store required command line args
type General struct {
	Help    bool `short:"h" long:"help" description:"Show this help message"`
	Version bool `short:"v" long:"version" description:"Print the tool version and exit"`
}

var errFailedQuery = errors.New("some codons could not be analysed")

func run(options GlobalOptions, out io.Writer) error {

	if len(options.Codons) == 0 && options.Input == "" {
		return fmt.Errorf("missing codon, use -c | --codon or -i | --input, try %s --help for details", toolName)
	}

	if options.NumWorker == 0 {
		options.NumWorker = runtime.NumCPU()
	}

	if options.Input != "" {
		if err := runBatch(options, out); err != nil {
			return err
		}
	}

	if len(options.Codons) == 0 {
		return nil
	}
	return runQueries(options, out)
}

func runBatch(options GlobalOptions, out io.Writer) error {

	in, err := os.Open(options.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	if options.Output != "" {
		f, err := os.Create(options.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return mutate.AnalyzeBatch(in, out, options.Options)
}

func runQueries(options GlobalOptions, out io.Writer) error {

	selected, err := parseSelection(options.Select)
	if err != nil {
		return err
	}

	e, err := mutate.NewEngine(options.Options)
	if err != nil {
		return err
	}

	var last *mutate.Result
	failed := false

	for _, raw := range options.Codons {

		result, newSelection, err := e.Query(raw, selected)
		if err != nil {
			fmt.Fprintf(out, "%v\n\n", err)
			failed = true
			continue
		}
		selected = newSelection

		if err := writeReport(out, result, selected); err != nil {
			return err
		}
		last = &result
	}

	if options.Plot != "" {
		if last == nil {
			return fmt.Errorf("no valid codon, %s not written", options.Plot)
		}
		if err := writePlot(options.Plot, *last); err != nil {
			return err
		}
	}

	if failed {
		return errFailedQuery
	}
	return nil
}

func parseSelection(s string) (residue.Code, error) {
	if s == "" {
		return 0, nil
	}
	s = strings.ToUpper(s)
	if len(s) != 1 || !residue.IsCanonical(residue.Code(s[0])) {
		return 0, fmt.Errorf("wrong value for -s | --select parameter: %s", s)
	}
	return residue.Code(s[0]), nil
}

func writePlot(filename string, result mutate.Result) error {

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	writer, err := chart.Draw(result, format)
	if err != nil {
		return fmt.Errorf("fail to write chart: %v", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filename)
		return fmt.Errorf("fail to write chart: %v", err)
	}
	return nil
}

func main() {

	var options GlobalOptions
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	args, err := p.Parse()
	if err != nil {
		fmt.Printf("wrong arguments: %v, try %s --help for more informations\n", err, toolName)
		os.Exit(1)
	}
	if options.Help {
		fmt.Printf("%s version %s\n\n", toolName, version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Printf("%s version %s\n", toolName, version)
		os.Exit(0)
	}
	options.Codons = append(options.Codons, args...)

	err = run(options, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to analyse codons:\n%v\n", err)
		os.Exit(1)
	}
}
