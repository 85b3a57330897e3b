package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	art "github.com/BU-DiSC/ART"
)

// Options holds artbench's command-line parameters, mirroring the
// unnamed locals (verbose, N, input_file) of the reference benchmark.
type Options struct {
	verbose bool
	count   int
	file    string
}

var opts Options

const defaultCount = 1000000

var rootCmd = &cobra.Command{
	Use:   "artbench",
	Short: "Benchmark insert and lookup throughput of an adaptive radix tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func initFlags() {
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print timings to stderr in addition to the CSV summary")
	rootCmd.PersistentFlags().IntVarP(&opts.count, "N", "N", defaultCount, "number of keys to load from the input file")
	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "path to a flat binary file of little-endian uint64 keys")
	_ = rootCmd.MarkPersistentFlagRequired("file")
}

func main() {
	initFlags()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readBin loads a flat file of little-endian uint64 values, the same
// layout the reference benchmark's read_bin<uint64_t> produces.
func readBin(path string) ([]uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n := len(data) / 8
	keys := make([]uint64, n)
	for i := 0; i < n; i++ {
		keys[i] = binary.LittleEndian.Uint64(data[i*8 : i*8+8])
	}
	return keys, nil
}

func run() error {
	keys, err := readBin(opts.file)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}
	n := opts.count
	if n > len(keys) {
		n = len(keys)
	}

	tree := art.NewUint64Tree()
	keyBuf := make([]byte, 8)

	var insertionTime time.Duration
	for i := 0; i < n; i++ {
		art.BigEndianLoadKey(keys[i], keyBuf)
		start := time.Now()
		if _, _, err := tree.Insert(keyBuf, keys[i]); err != nil {
			return fmt.Errorf("inserting key %d: %w", keys[i], err)
		}
		insertionTime += time.Since(start)
	}

	if opts.verbose {
		log.Infof("Insertion time: %d ns", insertionTime.Nanoseconds())
	}

	var queryTime time.Duration
	for i := 0; i < n; i++ {
		art.BigEndianLoadKey(keys[i], keyBuf)
		start := time.Now()
		value, found := tree.Get(keyBuf)
		queryTime += time.Since(start)
		if !found || value != keys[i] {
			return fmt.Errorf("lookup mismatch for key %d", keys[i])
		}
	}

	if opts.verbose {
		log.Infof("Query time: %d ns", queryTime.Nanoseconds())
	}

	fmt.Printf("%d,%d\n", insertionTime.Nanoseconds(), queryTime.Nanoseconds())
	return nil
}
