package fastq

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"math/rand"

	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

const linesPerRead = 4

// Downsample writes reads from the FASTQ file at inPath to out. Reads
// are randomly selected for inclusion in the output at the given
// sampling rate. Rates above 1.0 select every read.
func Downsample(ctx context.Context, rate float64, inPath string, out io.Writer) (err error) {
	if rate < 0.0 {
		return errors.New("rate must be non-negative")
	}
	in, r, err := openReader(ctx, inPath)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in, &err)
	random := rand.New(rand.NewSource(0))
	scanner := bufio.NewScanner(r)
	for {
		read, rerr := scanRead(scanner)
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return errors.Wrapf(rerr, "error reading %s", inPath)
		}
		if random.Float64() < rate {
			if _, werr := out.Write(read); werr != nil {
				return werr
			}
		}
	}
}

// DownsampleToCount writes approximately count randomly selected
// reads from the FASTQ file at inPath to out.
func DownsampleToCount(ctx context.Context, count int64, inPath string, out io.Writer) error {
	if count <= 0 {
		return errors.New("count must be positive")
	}
	total, err := countRecords(ctx, inPath)
	if err != nil {
		return err
	}
	if total == 0 {
		return nil
	}
	return Downsample(ctx, float64(count)/float64(total), inPath, out)
}

// countRecords counts 4-line records without validating them, so that
// sampling and counting accept the same inputs.
func countRecords(ctx context.Context, inPath string) (n int64, err error) {
	in, r, err := openReader(ctx, inPath)
	if err != nil {
		return 0, err
	}
	defer file.CloseAndReport(ctx, in, &err)
	scanner := bufio.NewScanner(r)
	for {
		_, rerr := scanRead(scanner)
		if rerr == io.EOF {
			return n, nil
		}
		if rerr != nil {
			return 0, errors.Wrapf(rerr, "error reading %s", inPath)
		}
		n++
	}
}

func scanRead(scanner *bufio.Scanner) ([]byte, error) {
	var buffer bytes.Buffer
	for i := 0; i < linesPerRead; i++ {
		if !scanner.Scan() {
			if i == 0 && scanner.Err() == nil {
				// Reached end of input.
				return nil, io.EOF
			}
			// Something went wrong.
			if scanner.Err() != nil {
				return nil, scanner.Err()
			}
			return nil, errors.Errorf("too few lines in FASTQ record: want %d, got %d", linesPerRead, i)
		}
		buffer.WriteString(scanner.Text())
		buffer.WriteString("\n")
	}
	return buffer.Bytes(), nil
}
