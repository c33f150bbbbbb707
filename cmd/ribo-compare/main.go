package main

/*
ribo-compare compares two pipeline output files for equivalence,
exiting 0 when they are equivalent and 1 otherwise. The comparison is
keyed on the file type; see the compare package for details.
*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/ribolab/ribotools/compare"
)

var (
	file1 = flag.String("1", "", "First file")
	file2 = flag.String("2", "", "Second file")
	names = flag.Bool("n", false, "Compare file names as well as contents")
)

func usage() {
	fmt.Printf("Usage: %s -1 FILE1 -2 FILE2 [-n]\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if *file1 == "" || *file2 == "" {
		log.Fatalf("-1 and -2 are required")
	}
	if flag.NArg() > 0 {
		log.Fatalf("unexpected arguments, please check flag syntax")
	}
	ctx := vcontext.Background()
	if err := compare.Files(ctx, *file1, *file2, *names); err != nil {
		log.Fatalf("%v", err)
	}
}
