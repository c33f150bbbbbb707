// Package fastq provides FASTQ read I/O and the file naming
// conventions used by the ribosome-profiling test fixtures.
package fastq

import (
	"errors"
	"strings"
)

var (
	// ErrShort is returned when a truncated FASTQ file is encountered.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when an invalid FASTQ file is encountered.
	ErrInvalid = errors.New("invalid FASTQ file")
	// ErrDiscordant is returned when two underlying FASTQ files are discordant.
	ErrDiscordant = errors.New("discordant FASTQ files")
)

// A Read is a FASTQ read, comprising an ID, sequence, line 3
// ("unknown"), and a quality string.
type Read struct {
	ID, Seq, Unk, Qual string
}

// Trim cuts the read and quality lengths to at most n.
func (r *Read) Trim(n int) {
	r.Seq = r.Seq[:n]
	r.Qual = r.Qual[:n]
}

// TrimStart removes the first n bases and their qualities from the
// read, returning the removed sequence.
func (r *Read) TrimStart(n int) string {
	removed := r.Seq[:n]
	r.Seq = r.Seq[n:]
	r.Qual = r.Qual[n:]
	return removed
}

// TrimEnd removes the last n bases and their qualities from the read,
// returning the removed sequence.
func (r *Read) TrimEnd(n int) string {
	removed := r.Seq[len(r.Seq)-n:]
	r.Seq = r.Seq[:len(r.Seq)-n]
	r.Qual = r.Qual[:len(r.Qual)-n]
	return removed
}

// Name returns the read ID without its "@" prefix.
func (r *Read) Name() string {
	return strings.TrimPrefix(r.ID, "@")
}

const qualOffset = 33

// EncodeQual encodes Phred quality scores as an ASCII quality string
// (offset 33, Sanger convention).
func EncodeQual(scores []int) string {
	qual := make([]byte, len(scores))
	for i, s := range scores {
		qual[i] = byte(qualOffset + s)
	}
	return string(qual)
}

// DecodeQual decodes an ASCII quality string into Phred quality
// scores.
func DecodeQual(qual string) []int {
	scores := make([]int, len(qual))
	for i := 0; i < len(qual); i++ {
		scores[i] = int(qual[i]) - qualOffset
	}
	return scores
}
