package config

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// upgrades maps parameter names used by 1.x releases to their current
// names.
var upgrades = map[string]string{
	"rRNA_fasta": RRNAFastaFile,
	"orf_fasta":  ORFFastaFile,
	"rRNA_index": RRNAIndexPrefix,
	"orf_index":  ORFIndexPrefix,
	"nprocesses": NumProcesses,
	"MinReadLen": MinReadLength,
	"MaxReadLen": MaxReadLength,
	"Buffer":     Buffer,
	"PrimaryID":  PrimaryID,
	"SecondID":   SecondaryID,
	"StopInCDS":  StopInCDS,
	"isTestRun":  IsTestRun,
	"ribovizGFF": IsRibovizGFF,
	"t_rna":      TRNAFile,
	"codon_pos":  CodonPositionsFile,
}

// updates10To11 holds the parameters added between releases 1.0.0 and
// 1.1.0, with their default values.
var updates10To11 = map[string]interface{}{
	DoPosSpNtFreq: true,
	FeaturesFile:  "data/yeast_features.tsv",
}

// updates11ToCurrent holds the parameters added between release 1.1.0
// and the current release, with their default values.
var updates11ToCurrent = map[string]interface{}{
	LogsDir:             "vignette/logs",
	CmdFile:             "run_riboviz_vignette.sh",
	TRNAFile:            "data/yeast_tRNAs.tsv",
	CodonPositionsFile:  "data/yeast_codon_pos_i200.RData",
	CountThreshold:      64,
	AsiteDispLengthFile: "data/yeast_standard_asite_disp_length.txt",
	CountReads:          true,
}

// Upgrade rewrites a 1.x workflow configuration in place into the
// current schema. Renamed parameters keep their values, parameters
// the current release expects are filled in with defaults, the index
// prefixes are cut down to their base names (they are now taken
// relative to dir_index), and a features file under a scripts/
// directory is moved to its sibling data/ directory.
func Upgrade(config map[string]interface{}) {
	for oldKey, newKey := range upgrades {
		if value, ok := config[oldKey]; ok {
			delete(config, oldKey)
			config[newKey] = value
		}
	}
	for key, value := range updates10To11 {
		if _, ok := config[key]; !ok {
			config[key] = value
		}
	}
	for key, value := range updates11ToCurrent {
		if _, ok := config[key]; !ok {
			config[key] = value
		}
	}
	for _, key := range []string{RRNAIndexPrefix, ORFIndexPrefix} {
		if prefix, ok := config[key].(string); ok {
			config[key] = filepath.Base(prefix)
		}
	}
	if features, ok := config[FeaturesFile].(string); ok {
		dir, name := filepath.Dir(features), filepath.Base(features)
		config[FeaturesFile] = filepath.Join(filepath.Dir(dir), "data", name)
	}
}

// UpgradeFile upgrades the workflow configuration in path and writes
// the result as YAML to outPath, or to standard output when outPath
// is empty.
func UpgradeFile(ctx context.Context, path, outPath string) (err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in, &err)
	data, err := ioutil.ReadAll(in.Reader(ctx))
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	config := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	Upgrade(config)
	out, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	if outPath == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	f, err := file.Create(ctx, outPath)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, f, &err)
	_, err = f.Writer(ctx).Write(out)
	return err
}
