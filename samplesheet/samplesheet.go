// Package samplesheet reads and writes the tab-separated sample
// sheets that pair demultiplexing barcodes with sample names, and the
// per-sample read-count sheets written next to demultiplexed FASTQ
// files.
package samplesheet

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/pkg/errors"
)

// Sample sheet column names.
const (
	SampleID = "SampleID"
	TagRead  = "TagRead"
	NumReads = "NumReads"
)

const (
	// UnassignedTag is the sample name under which demultiplexing
	// reports reads matching no barcode.
	UnassignedTag = "Unassigned"
	// UnassignedRead is the placeholder barcode recorded for
	// unassigned reads.
	UnassignedRead = "NNNNNNNNN"
	// TotalReads is the sample name of the summary row holding the
	// total read count.
	TotalReads = "Total"
	// NumReadsFile names the read-count sheet written next to
	// demultiplexed FASTQ files.
	NumReadsFile = "num_reads.tsv"
)

// A Sample pairs a sample name with the barcode expected to tag its
// reads.
type Sample struct {
	SampleID string `tsv:"SampleID"`
	TagRead  string `tsv:"TagRead"`
}

// A DeplexedSample extends Sample with the number of reads assigned
// to the sample by demultiplexing.
type DeplexedSample struct {
	SampleID string `tsv:"SampleID"`
	TagRead  string `tsv:"TagRead"`
	NumReads int    `tsv:"NumReads"`
}

// Write writes samples as a tab-separated sample sheet with a header
// row.
func Write(ctx context.Context, path string, samples []Sample) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	w := tsv.NewRowWriter(out.Writer(ctx))
	for i := range samples {
		if err := w.Write(&samples[i]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteDeplexed writes a read-count sheet recording, for each sample,
// the number of reads assigned to it by demultiplexing, followed by a
// row for the unassigned reads and a row with the total read count.
func WriteDeplexed(ctx context.Context, path string, samples []Sample, counts []int, numUnassigned int) (err error) {
	if len(counts) != len(samples) {
		return errors.Errorf("%d samples but %d read counts", len(samples), len(counts))
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	w := tsv.NewRowWriter(out.Writer(ctx))
	total := numUnassigned
	for i := range samples {
		row := DeplexedSample{
			SampleID: samples[i].SampleID,
			TagRead:  samples[i].TagRead,
			NumReads: counts[i],
		}
		total += counts[i]
		if err := w.Write(&row); err != nil {
			return err
		}
	}
	unassigned := DeplexedSample{UnassignedTag, UnassignedRead, numUnassigned}
	if err := w.Write(&unassigned); err != nil {
		return err
	}
	totalRow := DeplexedSample{SampleID: TotalReads, NumReads: total}
	if err := w.Write(&totalRow); err != nil {
		return err
	}
	return w.Flush()
}

// Read reads a tab-separated sample sheet with a header row naming at
// least the SampleID and TagRead columns.
func Read(ctx context.Context, path string) (samples []Sample, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer file.CloseAndReport(ctx, in, &err)
	r := tsv.NewReader(in.Reader(ctx))
	r.HasHeaderRow = true
	r.UseHeaderNames = true
	for {
		var sample Sample
		if err := r.Read(&sample); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "reading sample sheet %s", path)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// ReadDeplexed reads a read-count sheet written by WriteDeplexed,
// including its unassigned and total summary rows.
func ReadDeplexed(ctx context.Context, path string) (rows []DeplexedSample, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer file.CloseAndReport(ctx, in, &err)
	r := tsv.NewReader(in.Reader(ctx))
	r.HasHeaderRow = true
	r.UseHeaderNames = true
	for {
		var row DeplexedSample
		if err := r.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "reading read-count sheet %s", path)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
