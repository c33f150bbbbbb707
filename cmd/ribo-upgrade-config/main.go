package main

/*
ribo-upgrade-config rewrites a workflow configuration file written
for a 1.x release of the pipeline into the current schema, renaming
legacy parameters and filling in defaults for parameters the current
release expects.
*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/ribolab/ribotools/config"
)

var (
	input  = flag.String("i", "", "Input YAML configuration file")
	output = flag.String("o", "", "Output YAML file. By default, the upgraded configuration is written to standard output")
)

func usage() {
	fmt.Printf("Usage: %s -i config.yaml [-o upgraded.yaml]\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if *input == "" {
		log.Fatalf("-i is required")
	}
	if flag.NArg() > 0 {
		log.Fatalf("unexpected arguments, please check flag syntax")
	}
	ctx := vcontext.Background()
	if err := config.UpgradeFile(ctx, *input, *output); err != nil {
		log.Fatalf("%v", err)
	}
}
