package reference

// ExampleName is the target used when no name is given.
const ExampleName = "Example"

var builtin = map[string]Target{
	"SARS-CoV-2": {
		Sequence: "GACCCCAAAATCAGCGAAATGCACCCCGCATTACGTTTGGTGGACCCTCAGATTCAACTGGCAGTAACCAGA",
		Forward:  "GACCCCAAAATCAGCGAAAT",
		Reverse:  "TCTGGTTACTGCCAGTTGAATCTG",
		Probe:    Probe{Sequence: "ACCCCGCATTACGTTTGGTGGACC", Dye: "FAM", Quencher: "BHQ1"},
	},
	"RNase P": {
		Sequence: "AGATTTGGACCTGCGAGCGGGTTCTGACCTGAAGGCTCTGCGCGGACTTGTGGAGACAGCCGCTC",
		Forward:  "AGATTTGGACCTGCGAGCG",
		Reverse:  "GAGCGGCTGTCTCCACAAGT",
		Probe:    Probe{Sequence: "TTCTGACCTGAAGGCTCTGCGCG", Dye: "HEX", Quencher: "BHQ1"},
	},
	ExampleName: {
		Sequence: "ATGCGTACGTTAGCGATCG",
		Forward:  "ATGCGT",
		Reverse:  "CGATCG",
		Probe:    Probe{Sequence: "TACGTT", Dye: "FAM"},
	},
}

// Default returns the built-in target set.
func Default() *DB {
	return newDB(builtin)
}
