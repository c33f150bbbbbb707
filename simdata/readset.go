package simdata

import (
	"math/rand"

	"github.com/ribolab/ribotools/barcodes"
	"github.com/ribolab/ribotools/encoding/fastq"
)

// A ReadSet is the group of complementary records generated for one
// simulated read: the read as sequenced, the read after adaptor
// trimming, and the read after barcode and UMI extraction into the
// read name.
type ReadSet struct {
	// Full is umi5 + read + umi3 + barcode + adaptor + post-adaptor
	// nucleotides.
	Full fastq.Read
	// Trimmed is Full with the adaptor and anything after it removed.
	Trimmed fastq.Read
	// Extracted is Trimmed with the barcode and then the UMIs moved
	// into the read name. Depending on which parts are present the
	// name gains one of "_<barcode>_<umi5><umi3>", "_<barcode>_<umi3>",
	// "_<umi5><umi3>" or "_<umi3>".
	Extracted fastq.Read
}

// A readSpec describes one simulated read: its name, the UMIs
// flanking the read sequence, and the quality range to draw scores
// from. Group and member numbers in the name record the deduplication
// group the read is expected to land in.
type readSpec struct {
	name      string
	umi5      string
	read      string
	umi3      string
	qualities []int
}

// makeReadSet builds the complementary records for one simulated
// read. Extraction mirrors the UMI-tools convention: extracted
// sequences are appended to the read name behind "_" delimiters, with
// the 5' and 3' UMIs concatenated when both are present.
func makeReadSet(rnd *rand.Rand, spec readSpec, barcode, adaptor, post string) ReadSet {
	seq := spec.umi5 + spec.read + spec.umi3 + barcode + adaptor + post
	full := makeRead(rnd, spec.name, seq, spec.qualities)

	trimmed := full
	if n := len(adaptor) + len(post); n > 0 {
		trimmed.TrimEnd(n)
	}

	extracted := trimmed
	if barcode != "" {
		bc := extracted.TrimEnd(len(barcode))
		extracted.ID += barcodes.BarcodeDelimiter + bc
	}
	umi3Delimiter := barcodes.UMIDelimiter
	if spec.umi5 != "" {
		u5 := extracted.TrimStart(len(spec.umi5))
		extracted.ID += barcodes.UMIDelimiter + u5
		umi3Delimiter = ""
	}
	if spec.umi3 != "" {
		u3 := extracted.TrimEnd(len(spec.umi3))
		extracted.ID += umi3Delimiter + u3
	}
	return ReadSet{Full: full, Trimmed: trimmed, Extracted: extracted}
}
