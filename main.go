// debruijn assembles contiguous genomic sequences (contigs) from short
// overlapping reads. Reads are decomposed into k-mers forming a directed
// weighted de Bruijn graph; bubbles and tips are collapsed and the
// surviving source-to-sink paths are written out as FASTA contigs.
//
// The pipeline is deterministic: a fixed tie-break seed plus stable
// graph insertion order make repeated runs reproduce the same output.
package main

import "github.com/velvetlab/debruijn/cmd"

func main() {
	cmd.Execute()
}
