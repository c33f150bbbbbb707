// Package barcodes provides the barcode and UMI vocabulary shared by
// the simulated-data generator and the demultiplexing fixtures.
//
// Extracted barcodes and UMIs are recorded in read names behind a
// delimiter, following the UMI-tools convention, e.g.
// "EWSim-1.1-umi5-reada-umix_ACG_AAAACGTA".
package barcodes

import (
	"github.com/antzucaro/matchr"
)

const (
	// Nucleotides enumerates the standard DNA bases.
	Nucleotides = "ACGT"
	// BarcodeDelimiter separates a read name from an extracted barcode.
	BarcodeDelimiter = "_"
	// UMIDelimiter separates a read name from an extracted UMI.
	UMIDelimiter = "_"
)

// Mismatches returns the Hamming distance between two equal-length
// barcodes. An error is returned if the barcodes differ in length.
func Mismatches(a, b string) (int, error) {
	return matchr.Hamming(a, b)
}

// Matches reports whether barcodes a and b have equal length and
// differ in at most maxMismatches positions.
func Matches(a, b string, maxMismatches int) bool {
	d, err := matchr.Hamming(a, b)
	if err != nil {
		return false
	}
	return d <= maxMismatches
}
