package fastq

import (
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"
)

// FASTQ file name extensions. The canonical and short forms are
// recognized case-insensitively, as are their gzipped variants.
const (
	Ext   = ".fastq"
	FqExt = ".fq"
	GzExt = ".gz"
)

// Name returns the canonical FASTQ file name for a sample.
func Name(sample string) string {
	return sample + Ext
}

// IsFastq reports whether name is a FASTQ file name, gzipped or not.
func IsFastq(name string) bool {
	name = strings.ToLower(StripGz(name))
	return strings.HasSuffix(name, Ext) || strings.HasSuffix(name, FqExt)
}

// IsFastqGz reports whether name is a gzipped FASTQ file name.
func IsFastqGz(name string) bool {
	l := strings.ToLower(name)
	if !strings.HasSuffix(l, GzExt) {
		return false
	}
	base := l[:len(l)-len(GzExt)]
	return strings.HasSuffix(base, Ext) || strings.HasSuffix(base, FqExt)
}

// StripGz returns a gzipped FASTQ file name without its gzip
// extension, preserving case. Other names are returned unchanged.
func StripGz(name string) string {
	if IsFastqGz(name) {
		return name[:len(name)-len(GzExt)]
	}
	return name
}

// openReader opens path for reading, transparently decompressing
// compressed content.
func openReader(ctx context.Context, path string) (file.File, io.Reader, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	r, _ := compress.NewReader(in.Reader(ctx))
	return in, r, nil
}

// CountReads returns the number of reads in the FASTQ file at path,
// transparently decompressing compressed input.
func CountReads(ctx context.Context, path string) (n int, err error) {
	in, r, err := openReader(ctx, path)
	if err != nil {
		return 0, err
	}
	defer file.CloseAndReport(ctx, in, &err)
	scanner := NewScanner(r, ID)
	var read Read
	for scanner.Scan(&read) {
		n++
	}
	return n, scanner.Err()
}

// ReadFile reads all reads in the FASTQ file at path, transparently
// decompressing compressed input.
func ReadFile(ctx context.Context, path string) (reads []Read, err error) {
	in, r, err := openReader(ctx, path)
	if err != nil {
		return nil, err
	}
	defer file.CloseAndReport(ctx, in, &err)
	scanner := NewScanner(r, All)
	var read Read
	for scanner.Scan(&read) {
		reads = append(reads, read)
	}
	return reads, scanner.Err()
}

// WriteFile writes reads in FASTQ format to path, gzip-compressing
// the output when path names a gzipped FASTQ file.
func WriteFile(ctx context.Context, path string, reads []Read) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	var w io.Writer = out.Writer(ctx)
	if IsFastqGz(path) {
		gz := gzip.NewWriter(w)
		defer func() {
			if e := gz.Close(); e != nil && err == nil {
				err = e
			}
		}()
		w = gz
	}
	return NewWriter(w).WriteAll(reads)
}
