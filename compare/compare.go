// Package compare checks pipeline output files for equivalence,
// keying the comparison on the file type so that, say, a gzipped
// FASTQ file and its uncompressed copy compare equal record by
// record.
package compare

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
	"github.com/ribolab/ribotools/encoding/fasta"
	"github.com/ribolab/ribotools/encoding/fastq"
)

// Files compares the files at path1 and path2 for equivalence: FASTQ
// files record-wise, FASTA files sequence-wise, TSV files row-wise
// with comment lines ignored, other compressed files by their
// decompressed contents and anything else by size and bytes. Both
// paths must name existing regular files. When compareNames is set
// the base names must match as well. A nil return means the files
// are equivalent.
func Files(ctx context.Context, path1, path2 string, compareNames bool) error {
	var sizes [2]int64
	for i, path := range []string{path1, path2} {
		info, err := os.Stat(path)
		if err != nil {
			return errors.Wrapf(err, "stat %s", path)
		}
		if !info.Mode().IsRegular() {
			return errors.Errorf("%s is not a regular file", path)
		}
		sizes[i] = info.Size()
	}
	if compareNames {
		if name1, name2 := filepath.Base(path1), filepath.Base(path2); name1 != name2 {
			return errors.Errorf("file names differ: %s, %s", name1, name2)
		}
	}
	switch ext(path1) {
	case fastq.Ext, fastq.FqExt:
		return EqualFastq(ctx, path1, path2)
	case ".fa", ".fasta":
		return EqualFasta(ctx, path1, path2)
	case ".tsv":
		return EqualTSV(ctx, path1, path2)
	}
	if strings.HasSuffix(strings.ToLower(path1), fastq.GzExt) {
		return EqualBytes(ctx, path1, path2)
	}
	if sizes[0] != sizes[1] {
		return errors.Errorf("%s and %s sizes differ: %d, %d", path1, path2, sizes[0], sizes[1])
	}
	return EqualBytes(ctx, path1, path2)
}

// ext returns the extension of path with any trailing gzip extension
// dropped, lower cased.
func ext(path string) string {
	name := strings.ToLower(path)
	name = strings.TrimSuffix(name, fastq.GzExt)
	return filepath.Ext(name)
}

// open opens path for reading, transparently decompressing
// compressed content.
func open(ctx context.Context, path string) (file.File, io.Reader, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	r, _ := compress.NewReader(in.Reader(ctx))
	return in, r, nil
}

// EqualFastq compares two FASTQ files record by record.
func EqualFastq(ctx context.Context, path1, path2 string) (err error) {
	in1, r1, err := open(ctx, path1)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in1, &err)
	in2, r2, err := open(ctx, path2)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in2, &err)
	scanner := fastq.NewPairScanner(r1, r2, fastq.All)
	var read1, read2 fastq.Read
	n := 0
	for scanner.Scan(&read1, &read2) {
		n++
		if read1 != read2 {
			return errors.Errorf("%s and %s differ at read %d: %v, %v",
				path1, path2, n, read1, read2)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "%s, %s", path1, path2)
	}
	return nil
}

// EqualFasta compares two FASTA files sequence by sequence.
func EqualFasta(ctx context.Context, path1, path2 string) error {
	f1, err := fasta.ReadFile(ctx, path1)
	if err != nil {
		return err
	}
	f2, err := fasta.ReadFile(ctx, path2)
	if err != nil {
		return err
	}
	names1, names2 := f1.SeqNames(), f2.SeqNames()
	if len(names1) != len(names2) {
		return errors.Errorf("%s has %d sequences, %s has %d",
			path1, len(names1), path2, len(names2))
	}
	for i := range names1 {
		if names1[i] != names2[i] {
			return errors.Errorf("%s and %s name different sequences: %s, %s",
				path1, path2, names1[i], names2[i])
		}
	}
	for _, name := range names1 {
		len1, err := f1.Len(name)
		if err != nil {
			return err
		}
		len2, err := f2.Len(name)
		if err != nil {
			return err
		}
		if len1 != len2 {
			return errors.Errorf("sequence %s has length %d in %s, %d in %s",
				name, len1, path1, len2, path2)
		}
		if len1 == 0 {
			continue
		}
		s1, err := f1.Get(name, 0, len1)
		if err != nil {
			return err
		}
		s2, err := f2.Get(name, 0, len2)
		if err != nil {
			return err
		}
		if s1 != s2 {
			return errors.Errorf("sequence %s differs between %s and %s", name, path1, path2)
		}
	}
	return nil
}

// EqualTSV compares two TSV files row by row. Comment lines starting
// with "#" and blank lines are ignored, so files differing only in
// provenance headers compare equal.
func EqualTSV(ctx context.Context, path1, path2 string) error {
	rows1, err := readRows(ctx, path1)
	if err != nil {
		return err
	}
	rows2, err := readRows(ctx, path2)
	if err != nil {
		return err
	}
	if len(rows1) != len(rows2) {
		return errors.Errorf("%s has %d rows, %s has %d rows",
			path1, len(rows1), path2, len(rows2))
	}
	for i := range rows1 {
		if rows1[i] != rows2[i] {
			return errors.Errorf("%s and %s differ at row %d: %q, %q",
				path1, path2, i+1, rows1[i], rows2[i])
		}
	}
	return nil
}

// readRows reads the rows of a TSV file, skipping comment and blank
// lines.
func readRows(ctx context.Context, path string) (rows []string, err error) {
	in, r, err := open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer file.CloseAndReport(ctx, in, &err)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	return rows, scanner.Err()
}

// EqualBytes compares the contents of two files, transparently
// decompressing compressed content.
func EqualBytes(ctx context.Context, path1, path2 string) error {
	b1, err := readAll(ctx, path1)
	if err != nil {
		return err
	}
	b2, err := readAll(ctx, path2)
	if err != nil {
		return err
	}
	if !bytes.Equal(b1, b2) {
		return errors.Errorf("%s and %s contents differ", path1, path2)
	}
	return nil
}

func readAll(ctx context.Context, path string) (data []byte, err error) {
	in, r, err := open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer file.CloseAndReport(ctx, in, &err)
	data, err = ioutil.ReadAll(r)
	return data, errors.Wrapf(err, "read %s", path)
}
