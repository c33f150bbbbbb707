package samplesheet_test

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/ribolab/ribotools/samplesheet"
)

var samples = []samplesheet.Sample{
	{SampleID: "Tag0", TagRead: "ACG"},
	{SampleID: "Tag1", TagRead: "GAC"},
	{SampleID: "Tag2", TagRead: "CGA"},
}

func TestWriteRead(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()
	path := filepath.Join(tempDir, "multiplex_barcodes.tsv")
	assert.NoError(t, samplesheet.Write(ctx, path, samples))

	content, err := ioutil.ReadFile(path)
	assert.NoError(t, err)
	want := "SampleID\tTagRead\n" +
		"Tag0\tACG\n" +
		"Tag1\tGAC\n" +
		"Tag2\tCGA\n"
	expect.EQ(t, string(content), want)

	got, err := samplesheet.Read(ctx, path)
	assert.NoError(t, err)
	expect.EQ(t, got, samples)
}

func TestWriteDeplexed(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()
	path := filepath.Join(tempDir, samplesheet.NumReadsFile)
	assert.NoError(t, samplesheet.WriteDeplexed(ctx, path, samples, []int{27, 27, 27}, 9))

	content, err := ioutil.ReadFile(path)
	assert.NoError(t, err)
	want := "SampleID\tTagRead\tNumReads\n" +
		"Tag0\tACG\t27\n" +
		"Tag1\tGAC\t27\n" +
		"Tag2\tCGA\t27\n" +
		"Unassigned\tNNNNNNNNN\t9\n" +
		"Total\t\t90\n"
	expect.EQ(t, string(content), want)

	rows, err := samplesheet.ReadDeplexed(ctx, path)
	assert.NoError(t, err)
	expect.EQ(t, len(rows), 5)
	expect.EQ(t, rows[0], samplesheet.DeplexedSample{SampleID: "Tag0", TagRead: "ACG", NumReads: 27})
	expect.EQ(t, rows[3], samplesheet.DeplexedSample{SampleID: "Unassigned", TagRead: "NNNNNNNNN", NumReads: 9})
	expect.EQ(t, rows[4], samplesheet.DeplexedSample{SampleID: "Total", NumReads: 90})
}

func TestWriteDeplexedCountMismatch(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()
	path := filepath.Join(tempDir, samplesheet.NumReadsFile)
	err := samplesheet.WriteDeplexed(ctx, path, samples, []int{27}, 9)
	if err == nil {
		t.Errorf("expected error for mismatched sample and count lengths")
	}
}
