package mutate

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

const (
	// size of the buffer for writing to file
	maxBufferSize = 1024 * 1024
	// lines longer than this are cut to their first previewSize bytes
	maxLineSize = 64 * 1024
	previewSize = 16
)

// AnalyzeBatch reads codons from in, one per line, and writes one
// tab separated line per codon to out, in input order:
//
// AUG	M	L	L:2,I:1,V:1,F:0,...
// UAA	error	invalid codon "UAA": stop codon does not encode an amino acid
//
// Empty lines and lines starting with '#' or '>' are skipped.
// Codons are analysed independently on options.NumWorker goroutines,
// a rejected codon does not stop the batch
func AnalyzeBatch(in io.Reader, out io.Writer, options Options) error {

	e, err := NewEngine(options)
	if err != nil {
		return err
	}

	codons, err := readCodons(in)
	if err != nil {
		return err
	}

	numWorker := options.NumWorker
	if numWorker <= 0 {
		numWorker = runtime.NumCPU()
	}

	lines := make([][]byte, len(codons))
	indexes := make(chan int, 100)

	var wg sync.WaitGroup
	wg.Add(numWorker)

	for nWorker := 0; nWorker < numWorker; nWorker++ {

		go func() {

			defer wg.Done()

			var buf bytes.Buffer
			for i := range indexes {
				buf.Reset()
				e.writeLine(&buf, codons[i])
				lines[i] = append([]byte(nil), buf.Bytes()...)
			}
		}()
	}

	for i := range codons {
		indexes <- i
	}
	close(indexes)

	wg.Wait()

	w := bufio.NewWriterSize(out, maxBufferSize)
	for _, line := range lines {
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("fail to write to output file: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("fail to write to output file: %v", err)
	}
	return nil
}

func (e *Engine) writeLine(buf *bytes.Buffer, raw string) {

	result, err := e.query(raw)
	if err != nil {
		// keep the line at 3 columns
		buf.WriteString(strings.ReplaceAll(raw, "\t", `\t`))
		buf.WriteString("\terror\t")
		buf.WriteString(err.Error())
		buf.WriteByte('\n')
		return
	}

	buf.WriteString(string(result.Codon))
	buf.WriteByte('\t')
	buf.WriteByte(byte(result.Source))
	buf.WriteByte('\t')
	buf.WriteByte(byte(result.Default))
	buf.WriteByte('\t')
	for i, n := range result.Alternatives {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte(byte(n.Residue))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(n.Score))
	}
	buf.WriteByte('\n')
}

func (e *Engine) query(raw string) (Result, error) {
	codon, err := e.Validate(raw)
	if err != nil {
		return Result{}, err
	}
	return e.Analyze(codon)
}

func readCodons(in io.Reader) ([]string, error) {

	r := bufio.NewReaderSize(in, 4096)

	var codons []string
	for {
		line, err := readLine(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fail to read codons: %v", err)
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' || line[0] == '>' {
			continue
		}
		codons = append(codons, string(line))
	}
	return codons, nil
}

// readLine returns the next line without its end of line. A line longer
// than maxLineSize is cut to its first previewSize bytes followed by "...",
// the rest of it is discarded
func readLine(r *bufio.Reader) ([]byte, error) {

	var line []byte
	truncated := false

	for {
		chunk, isPrefix, err := r.ReadLine()
		if err == io.EOF && line != nil {
			// last line filled the buffer exactly
			return line, nil
		}
		if err != nil {
			return nil, err
		}
		if !truncated {
			line = append(line, chunk...)
			if len(line) > maxLineSize {
				line = append(line[:previewSize], "..."...)
				truncated = true
			}
		}
		if !isPrefix {
			return line, nil
		}
	}
}
