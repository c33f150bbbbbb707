package simdata

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/ribolab/ribotools/barcodes"
)

// readIDPrefix starts every simulated read name.
const readIDPrefix = "EWSim"

// A ReadID is the ground truth encoded in a simulated read name
// "EWSim-<group>.<member>-<desc>[-bar<barcode>.<mismatch>]": the
// deduplication group the read is expected to land in, its member
// number within that group, and, for multiplexed reads, the index of
// the barcode it was tagged with and that barcode's mismatch count
// against the sample sheet.
type ReadID struct {
	Group  int
	Member int
	Desc   string
	// Barcode and Mismatch are -1 for reads outside the multiplexed
	// scenario.
	Barcode  int
	Mismatch int
}

// ParseReadID parses the ground truth out of a simulated read name.
// The name may carry a leading "@" and extracted barcode/UMI
// suffixes; both are ignored.
func ParseReadID(id string) (ReadID, error) {
	name := strings.TrimPrefix(id, "@")
	if i := strings.Index(name, barcodes.UMIDelimiter); i >= 0 {
		name = name[:i]
	}
	parts := strings.Split(name, "-")
	if len(parts) < 2 || parts[0] != readIDPrefix {
		return ReadID{}, errors.Errorf("malformed simulated read name %q", id)
	}
	r := ReadID{Barcode: -1, Mismatch: -1}
	if _, err := fmt.Sscanf(parts[1], "%d.%d", &r.Group, &r.Member); err != nil {
		return ReadID{}, errors.Wrapf(err, "malformed group in read name %q", id)
	}
	rest := parts[2:]
	if len(rest) > 0 {
		if last := rest[len(rest)-1]; strings.HasPrefix(last, "bar") {
			if _, err := fmt.Sscanf(last, "bar%d.%d", &r.Barcode, &r.Mismatch); err != nil {
				return ReadID{}, errors.Wrapf(err, "malformed barcode in read name %q", id)
			}
			rest = rest[:len(rest)-1]
		}
	}
	r.Desc = strings.Join(rest, "-")
	return r, nil
}
