package barcodes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNucleotides(t *testing.T) {
	assert.Equal(t, 4, len(Nucleotides))
	for _, c := range Nucleotides {
		assert.True(t, strings.ContainsRune("ACGT", c), "%c is not a valid base", c)
	}
}

func TestMismatches(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"ACG", "ACG", 0},
		{"ACG", "ACT", 1},
		{"ACG", "ATT", 2},
		{"ACG", "TTT", 3},
		{"AAAACGTA", "AAAACGTA", 0},
	}
	for _, test := range tests {
		got, err := Mismatches(test.a, test.b)
		assert.NoError(t, err)
		assert.Equal(t, test.want, got, "'%s' vs '%s' should have %d mismatches", test.a, test.b, test.want)
	}

	_, err := Mismatches("ACG", "ACGT")
	assert.Error(t, err, "barcodes of unequal length should not compare")
}

func TestMatches(t *testing.T) {
	tests := []struct {
		a, b          string
		maxMismatches int
		want          bool
	}{
		{"ACG", "ACG", 0, true},
		{"ACG", "ACT", 0, false},
		{"ACG", "ACT", 1, true},
		{"ACG", "ATT", 1, false},
		{"ACG", "ATT", 2, true},
		{"ACG", "TTT", 2, false},
		{"ACG", "ACGT", 2, false},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Matches(test.a, test.b, test.maxMismatches),
			"'%s' vs '%s' with %d allowed mismatches", test.a, test.b, test.maxMismatches)
	}
}
