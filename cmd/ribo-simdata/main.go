package main

/*
ribo-simdata writes the simulated ribosome-profiling FASTQ files used
to validate adaptor trimming, UMI extraction, deduplication and
demultiplexing against known ground truth.
*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/ribolab/ribotools/simdata"
)

var seed = flag.Int64("seed", 0, "Seed for the quality score generator")

func usage() {
	fmt.Printf("Usage: %s [OPTIONS] DIRECTORY\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("exactly one output directory expected, got %d arguments", flag.NArg())
	}
	ctx := vcontext.Background()
	dir := flag.Arg(0)
	if err := simdata.Create(ctx, dir, *seed); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("wrote simulated FASTQ data to %s", dir)
}
