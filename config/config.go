// Package config reads and upgrades the workflow configuration of the
// ribosome-profiling pipeline. A configuration is a flat YAML mapping
// from parameter name to value; Upgrade rewrites mappings written for
// 1.x releases of the pipeline into the current schema.
package config

// Current configuration parameter names.
const (
	AsiteDispLengthFile = "asite_disp_length_file"
	Buffer              = "buffer"
	CmdFile             = "cmd_file"
	CodonPositionsFile  = "codon_positions_file"
	CountReads          = "count_reads"
	CountThreshold      = "count_threshold"
	DoPosSpNtFreq       = "do_pos_sp_nt_freq"
	FeaturesFile        = "features_file"
	IndexDir            = "dir_index"
	InputDir            = "dir_in"
	IsRibovizGFF        = "is_riboviz_gff"
	IsTestRun           = "is_test_run"
	LogsDir             = "dir_logs"
	MaxReadLength       = "max_read_length"
	MinReadLength       = "min_read_length"
	NumProcesses        = "num_processes"
	ORFFastaFile        = "orf_fasta_file"
	ORFIndexPrefix      = "orf_index_prefix"
	OutputDir           = "dir_out"
	PrimaryID           = "primary_id"
	RRNAFastaFile       = "rrna_fasta_file"
	RRNAIndexPrefix     = "rrna_index_prefix"
	SecondaryID         = "secondary_id"
	StopInCDS           = "stop_in_cds"
	TmpDir              = "dir_tmp"
	TRNAFile            = "t_rna_file"
)

// ValueInMap reports whether key is present in m with a non-nil
// value. Unless allowFalseEmpty is set, a false boolean, zero number
// or empty string, slice or map counts as absent, so callers can
// treat "parameter: false" and a missing parameter alike.
func ValueInMap(key string, m map[string]interface{}, allowFalseEmpty bool) bool {
	v, ok := m[key]
	if !ok || v == nil {
		return false
	}
	if allowFalseEmpty {
		return true
	}
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case string:
		return x != ""
	case []interface{}:
		return len(x) > 0
	case map[interface{}]interface{}:
		return len(x) > 0
	case map[string]interface{}:
		return len(x) > 0
	}
	return true
}
