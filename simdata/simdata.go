// Package simdata generates simulated FASTQ files for testing UMI
// deduplication, adaptor trimming, and demultiplexing against known
// ground truth.
//
// Each simulated read is written in three complementary forms: as
// sequenced, after adaptor trimming, and after barcode/UMI extraction
// into the read name (see ReadSet). Read names encode the
// deduplication group each read is expected to land in (see ReadID),
// so downstream tools can be checked file-for-file against the
// generated fixtures.
//
// Create writes the following files to its output directory:
//
//	umi5_umi3_umi_adaptor.fastq   9 reads, 4nt UMIs at both ends, 11nt 3' adaptor
//	umi5_umi3_umi.fastq           the same reads, adaptor trimmed
//	umi5_umi3.fastq               the same reads, UMIs extracted (5 groups)
//	umi3_umi_adaptor.fastq        8 reads, 4nt UMI at the 3' end only
//	umi3_umi.fastq                the same reads, adaptor trimmed
//	umi3.fastq                    the same reads, UMI extracted (4 groups)
//	multiplex_barcodes.tsv        sample sheet for the multiplexed reads
//	multiplex_umi_barcode_adaptor.fastq  90 reads tagged with 3nt barcodes
//	multiplex_umi_barcode.fastq   the same reads, adaptor trimmed
//	multiplex.fastq               the same reads, barcode and UMIs extracted
//	deplex/Tag0|1|2.fastq         expected demultiplexing result, 27 reads each
//	deplex/Unassigned.fastq       9 reads matching no barcode within 2 mismatches
//	deplex/num_reads.tsv          expected per-sample read counts
package simdata

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/ribolab/ribotools/encoding/fastq"
	"github.com/ribolab/ribotools/samplesheet"
)

// Building blocks for the simulated reads. The read sequences come
// from the yeast ORFs YAL003W and YAL038W so the fixtures align
// against the standard vignette reference.
const (
	readA  = "ATGGCATCCACCGATTTCTCCAAGATTGAA" // first 30nt of the YAL003W ORF
	readAe = "ATGGCATCCACCGATGTCTCCAAGATTGAA" // readA with one substitution
	readB  = "TCTAGATTAGAAAGATTGACCTCATTAA"   // 28nt following the YAL038W ORF start

	umiX  = "CGTA"
	umiY  = "ATAT"
	umiYe = "ATAA" // umiY with one substitution
	umiZ  = "CGGC"
	umiZe = "CTGC" // umiZ with one substitution
	umi5  = "AAAA"
	umi5c = "CCCC"

	// 3' adaptor ligated during library prep, and the stray
	// nucleotides that follow it when a short read runs past it.
	adaptor       = "CTGTAGGCACC"
	postAdaptorNT = "AC"
)

// Output layout.
const (
	// SampleSheetFile names the sample sheet pairing multiplexed
	// barcodes with sample names.
	SampleSheetFile = "multiplex_barcodes.tsv"
	// DeplexDir is the subdirectory holding the expected
	// demultiplexing results.
	DeplexDir = "deplex"

	tagFormat     = "Tag%d"
	barcodeFormat = "-bar%d.%d"
)

// Create writes the simulated FASTQ files and their expected
// demultiplexing results to outputDir, deleting the directory first
// if it already exists. Runs with the same seed create identical
// files.
func Create(ctx context.Context, outputDir string, seed int64) error {
	if err := os.RemoveAll(outputDir); err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	rnd := rand.New(rand.NewSource(seed))

	config53 := []readSpec{
		{"EWSim-1.1-umi5-reada-umix", umi5, readA, umiX, qualityHigh},
		{"EWSim-1.2-umi5-reada-umix", umi5, readA, umiX, qualityMedium},
		{"EWSim-1.3-umi5-readae-umix", umi5, readAe, umiX, qualityMedium},
		{"EWSim-2.1-umi5-reada-umiy", umi5, readA, umiY, qualityMedium},
	}
	// The shorter readB cases run past the adaptor into stray
	// nucleotides.
	config53Post := []readSpec{
		{"EWSim-3.1-umi5-readb-umix", umi5, readB, umiX, qualityMedium},
		{"EWSim-4.1-umi5-readb-umiz", umi5, readB, umiZ, qualityHigh},
		{"EWSim-4.2-umi5-readb-umiz", umi5, readB, umiZ, qualityMedium},
		{"EWSim-4.3-umi5-readb-umize", umi5, readB, umiZe, qualityMedium},
		{"EWSim-5.1-umi5c-readb-umix", umi5c, readB, umiX, qualityMedium},
	}

	// Reads with a 5' UMI, a 3' UMI and an adaptor.
	sets := make([]ReadSet, 0, len(config53)+len(config53Post))
	for _, spec := range config53 {
		sets = append(sets, makeReadSet(rnd, spec, "", adaptor, ""))
	}
	for _, spec := range config53Post {
		sets = append(sets, makeReadSet(rnd, spec, "", adaptor, postAdaptorNT))
	}
	if err := writeReadSets(ctx, outputDir, "umi5_umi3", "_umi", sets); err != nil {
		return err
	}

	// Reads with a 3' UMI and an adaptor only.
	config3 := []readSpec{
		{"EWSim-1.1-reada-umix", "", readA, umiX, qualityHigh},
		{"EWSim-1.2-reada-umix", "", readA, umiX, qualityMedium},
		{"EWSim-1.3-readae-umix", "", readAe, umiX, qualityMedium},
		{"EWSim-2.1-reada-umiy", "", readA, umiY, qualityMedium},
		{"EWSim-3.1-readb-umix", "", readB, umiX, qualityMedium},
		{"EWSim-4.1-readb-umiz", "", readB, umiZ, qualityHigh},
		{"EWSim-4.2-readb-umiz", "", readB, umiZ, qualityMedium},
		{"EWSim-4.3-readb-umize", "", readB, umiZe, qualityMedium},
	}
	sets = sets[:0]
	for _, spec := range config3 {
		sets = append(sets, makeReadSet(rnd, spec, "", adaptor, ""))
	}
	if err := writeReadSets(ctx, outputDir, "umi3", "_umi", sets); err != nil {
		return err
	}

	return createMultiplexed(ctx, rnd, outputDir, config53, config53Post)
}

// createMultiplexed writes the multiplexed reads, their sample sheet,
// and the demultiplexing results expected when allowing up to 2
// barcode mismatches.
func createMultiplexed(ctx context.Context, rnd *rand.Rand, outputDir string, config53, config53Post []readSpec) error {
	// Barcodes, then the same barcodes at 1nt and 2nt mismatch.
	barcodeSets := [][]string{
		{"ACG", "GAC", "CGA"},
		{"ACT", "GTC", "TGA"},
		{"TAG", "GTA", "CTT"},
	}
	samples := make([]samplesheet.Sample, len(barcodeSets[0]))
	for i, barcode := range barcodeSets[0] {
		samples[i] = samplesheet.Sample{SampleID: fmt.Sprintf(tagFormat, i), TagRead: barcode}
	}
	if err := samplesheet.Write(ctx, filepath.Join(outputDir, SampleSheetFile), samples); err != nil {
		return err
	}

	deplexDir := filepath.Join(outputDir, DeplexDir)
	if err := os.Mkdir(deplexDir, 0755); err != nil {
		return err
	}

	// TTT mismatches every barcode by 3nt, so its reads demultiplex
	// as unassigned.
	barcodeSets[0] = append(barcodeSets[0], "TTT")
	unassignedIndex := len(samples)
	var (
		sets    []ReadSet
		byIndex = make([][]fastq.Read, unassignedIndex+1)
		counts  = make([]int, unassignedIndex+1)
	)
	// Iterate over mismatches then barcodes, interleaving the reads
	// for each barcode with those for its mismatched variants.
	for mismatchIndex, row := range barcodeSets {
		for barcodeIndex, barcode := range row {
			suffix := fmt.Sprintf(barcodeFormat, barcodeIndex, mismatchIndex)
			for _, spec := range config53 {
				spec.name += suffix
				set := makeReadSet(rnd, spec, barcode, adaptor, "")
				sets = append(sets, set)
				byIndex[barcodeIndex] = append(byIndex[barcodeIndex], set.Extracted)
				counts[barcodeIndex]++
			}
			for _, spec := range config53Post {
				spec.name += suffix
				set := makeReadSet(rnd, spec, barcode, adaptor, postAdaptorNT)
				sets = append(sets, set)
				byIndex[barcodeIndex] = append(byIndex[barcodeIndex], set.Extracted)
				counts[barcodeIndex]++
			}
		}
	}
	if err := writeReadSets(ctx, outputDir, "multiplex", "_umi_barcode", sets); err != nil {
		return err
	}
	for i, reads := range byIndex {
		name := fastq.Name(fmt.Sprintf(tagFormat, i))
		if i == unassignedIndex {
			name = fastq.Name(samplesheet.UnassignedTag)
		}
		if err := fastq.WriteFile(ctx, filepath.Join(deplexDir, name), reads); err != nil {
			return err
		}
	}
	return samplesheet.WriteDeplexed(ctx, filepath.Join(deplexDir, samplesheet.NumReadsFile),
		samples, counts[:unassignedIndex], counts[unassignedIndex])
}

// writeReadSets writes the full, adaptor-trimmed, and extracted
// records of sets to three FASTQ files sharing a name prefix.
func writeReadSets(ctx context.Context, dir, prefix, midfix string, sets []ReadSet) error {
	var (
		full      = make([]fastq.Read, len(sets))
		trimmed   = make([]fastq.Read, len(sets))
		extracted = make([]fastq.Read, len(sets))
	)
	for i, set := range sets {
		full[i] = set.Full
		trimmed[i] = set.Trimmed
		extracted[i] = set.Extracted
	}
	if err := fastq.WriteFile(ctx, filepath.Join(dir, fastq.Name(prefix+midfix+"_adaptor")), full); err != nil {
		return err
	}
	if err := fastq.WriteFile(ctx, filepath.Join(dir, fastq.Name(prefix+midfix)), trimmed); err != nil {
		return err
	}
	return fastq.WriteFile(ctx, filepath.Join(dir, fastq.Name(prefix)), extracted)
}
