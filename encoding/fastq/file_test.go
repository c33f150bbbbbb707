package fastq_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/ribolab/ribotools/encoding/fastq"
)

func TestIsFastqGz(t *testing.T) {
	for _, format := range []string{"%s.fastq.gz", "%s.fq.gz", "%s.FASTQ.GZ", "%s.FQ.GZ"} {
		name := fmt.Sprintf(format, "sample")
		if !fastq.IsFastqGz(name) {
			t.Errorf("IsFastqGz(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"sample.txt", "sample", "sample.gz", "sample.fastq"} {
		if fastq.IsFastqGz(name) {
			t.Errorf("IsFastqGz(%q) = true, want false", name)
		}
	}
}

func TestIsFastq(t *testing.T) {
	for _, name := range []string{"sample.fastq", "sample.fq", "sample.FASTQ", "sample.FQ",
		"sample.fastq.gz", "sample.FQ.GZ"} {
		if !fastq.IsFastq(name) {
			t.Errorf("IsFastq(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"sample.txt", "sample", "sample.gz"} {
		if fastq.IsFastq(name) {
			t.Errorf("IsFastq(%q) = true, want false", name)
		}
	}
}

func TestStripGz(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"sample.fastq.gz", "sample.fastq"},
		{"sample.fq.gz", "sample.fq"},
		{"sample.FASTQ.GZ", "sample.FASTQ"},
		{"sample.FQ.GZ", "sample.FQ"},
		{"sample.txt", "sample.txt"},
		{"sample", "sample"},
	}
	for _, test := range tests {
		if got := fastq.StripGz(test.name); got != test.want {
			t.Errorf("StripGz(%q) = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestFileName(t *testing.T) {
	expect.EQ(t, fastq.Name("Tag0"), "Tag0.fastq")
}

func testReads(n int) []fastq.Read {
	reads := make([]fastq.Read, n)
	for i := range reads {
		reads[i] = fastq.Read{
			ID:   fmt.Sprintf("@read%d", i),
			Seq:  "ACGT",
			Unk:  "+",
			Qual: fastq.EncodeQual([]int{0, 1, 2, 3}),
		}
	}
	return reads
}

func TestCountReads(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()
	for _, count := range []int{0, 1, 10} {
		for _, format := range []string{"c%d.fastq", "c%d.fastq.gz"} {
			path := filepath.Join(tempDir, fmt.Sprintf(format, count))
			t.Run(filepath.Base(path), func(t *testing.T) {
				assert.NoError(t, fastq.WriteFile(ctx, path, testReads(count)))
				n, err := fastq.CountReads(ctx, path)
				assert.NoError(t, err)
				expect.EQ(t, n, count)
			})
		}
	}
}

func TestReadWriteFile(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()
	for _, name := range []string{"reads.fastq", "reads.fq.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tempDir, name)
			want := testReads(3)
			assert.NoError(t, fastq.WriteFile(ctx, path, want))
			got, err := fastq.ReadFile(ctx, path)
			assert.NoError(t, err)
			expect.EQ(t, got, want)
		})
	}
}
