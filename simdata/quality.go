package simdata

import (
	"math/rand"

	"github.com/ribolab/ribotools/encoding/fastq"
)

// Phred score ranges the simulated reads draw from. High-quality
// scores mark the reads deduplication is expected to keep.
var (
	qualityMedium = qualityRange(30, 40)
	qualityHigh   = qualityRange(39, 40)
)

func qualityRange(lo, hi int) []int {
	scores := make([]int, 0, hi-lo+1)
	for q := lo; q <= hi; q++ {
		scores = append(scores, q)
	}
	return scores
}

// simulateQual draws n quality scores uniformly from qualities.
func simulateQual(rnd *rand.Rand, n int, qualities []int) []int {
	scores := make([]int, n)
	for i := range scores {
		scores[i] = qualities[rnd.Intn(len(qualities))]
	}
	return scores
}

// makeRead builds a FASTQ read named name with the given sequence and
// quality scores drawn from qualities.
func makeRead(rnd *rand.Rand, name, seq string, qualities []int) fastq.Read {
	return fastq.Read{
		ID:   "@" + name,
		Seq:  seq,
		Unk:  "+",
		Qual: fastq.EncodeQual(simulateQual(rnd, len(seq), qualities)),
	}
}
