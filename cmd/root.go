// Package cmd is the command line surface of the assembler. All boundary
// validation — file existence, flag sanity — happens here, before the
// core pipeline runs.
package cmd

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/velvetlab/debruijn/contig"
	"github.com/velvetlab/debruijn/dot"
	"github.com/velvetlab/debruijn/fastq"
	"github.com/velvetlab/debruijn/kmer"
	"github.com/velvetlab/debruijn/simplify"
)

// tieBreakSeed seeds the tie-break generator. Fixed so that repeated runs
// over the same input produce the same contigs.
const tieBreakSeed = 9001

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "debruijn",
	Short: "Assemble contigs from short sequencing reads using a de Bruijn graph",
	Long: `Assemble contigs from short sequencing reads.

Reads are cut into k-mers that induce a directed weighted graph; bubbles
and tips are collapsed, and the remaining maximal paths become contigs,
written in FASTA format. Given the same input and k-mer size, repeated
runs produce identical output.`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	rootCmd.Flags().StringP("input", "i", "", "input FASTQ file (.fq, optionally .gz or .zst)")
	rootCmd.Flags().IntP("kmer-size", "k", 22, "k-mer size")
	rootCmd.Flags().StringP("output", "o", "contigs.fasta", "output FASTA file")
	rootCmd.Flags().StringP("graph", "f", "", "write the simplified graph in Graphviz DOT format")
	cobra.CheckErr(rootCmd.MarkFlagRequired("input"))
	cobra.CheckErr(viper.BindPFlags(rootCmd.Flags()))
}

func run(cmd *cobra.Command, args []string) error {
	input := viper.GetString("input")
	k := viper.GetInt("kmer-size")
	output := viper.GetString("output")
	graphOut := viper.GetString("graph")

	if k < 1 {
		return fmt.Errorf("k-mer size must be positive, got %d", k)
	}
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input %s: %w", input, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %s is a directory", input)
	}

	src, err := fastq.Open(input)
	if err != nil {
		return err
	}
	defer src.Close()

	counts, err := kmer.Count(src, k)
	if err != nil {
		return err
	}
	g := kmer.BuildGraph(counts)
	log.Printf("built graph: %d distinct %d-mers, %d nodes, %d edges",
		counts.Len(), k, g.VertexCount(), g.EdgeCount())

	rng := rand.New(rand.NewSource(tieBreakSeed))
	simplify.Bubbles(g, rng)
	simplify.EntryTips(g, rng, g.Sources())
	simplify.OutTips(g, rng, g.Sinks())
	log.Printf("simplified graph: %d nodes, %d edges", g.VertexCount(), g.EdgeCount())

	contigs := contig.Extract(g, g.Sources(), g.Sinks())
	if err := contig.Save(output, contigs); err != nil {
		return err
	}
	log.Printf("wrote %d contigs to %s", len(contigs), output)

	if graphOut != "" {
		if err := dot.Save(g, graphOut); err != nil {
			return err
		}
		log.Printf("wrote graph to %s", graphOut)
	}
	return nil
}
