// Command arrays-demo fills a fixed array with zeros, then sequential
// integers, then pseudo-random integers, printing it after each step.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pavanmanishd/arrays"
	"github.com/pavanmanishd/arrays/internal/config"
)

var (
	flagLength  int
	flagSeed    uint64
	flagDynamic bool
	flagChunk   int
	flagVerbose bool
)

func init() {
	flag.IntVar(&flagLength, "n", 10, "number of elements in the array")
	flag.Uint64Var(&flagSeed, "seed", 0, "random seed (0 seeds from the wall clock)")
	flag.BoolVar(&flagDynamic, "dynamic", false, "also copy the values into an arena-backed dynamic array")
	flag.IntVar(&flagChunk, "chunk", 64, "arena chunk size in elements")
	flag.BoolVar(&flagVerbose, "v", false, "verbose output")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nArrays-demo prints a fixed array as it is zeroed, numbered and randomized.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}

	flag.Parse()

	cfg := config.DefaultConfig()
	cfg.Length = flagLength
	cfg.Seed = flagSeed
	cfg.Dynamic = flagDynamic
	cfg.ChunkSize = flagChunk
	cfg.Verbose = flagVerbose

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, w io.Writer, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	arr := arrays.NewFixedArray[int](cfg.Length)
	if err := printArray(w, arr); err != nil {
		return err
	}

	for i := range arr.Data() {
		*arr.Ref(i) = i
	}
	if err := printArray(w, arr); err != nil {
		return err
	}

	seed := cfg.EffectiveSeed(time.Now())
	logger.Debug("seeding generator", zap.Uint64("seed", seed))
	rng := rand.New(rand.NewPCG(seed, seed))
	for i := range arr.Data() {
		*arr.Ref(i) = rng.IntN(math.MaxInt32)
	}
	if err := printArray(w, arr); err != nil {
		return err
	}

	if cfg.Dynamic {
		return copyToDynamic(cfg.ChunkSize, arr, w, logger)
	}
	return nil
}

// copyToDynamic appends every element of arr to an arena-backed dynamic
// array, logging each reallocation.
func copyToDynamic(chunkSize int, arr *arrays.FixedArray[int], w io.Writer, logger *zap.Logger) error {
	arena := arrays.NewArena[int](chunkSize)
	defer arena.Release()

	d := arrays.NewDynamicArrayIn[int](arena)
	for _, v := range arr.All() {
		prev := d.Cap()
		d.PushBack(v)
		if d.Cap() != prev {
			logger.Debug("dynamic array grew",
				zap.Int("size", d.Size()),
				zap.Int("from", prev),
				zap.Int("to", d.Cap()),
			)
		}
	}

	st := d.Stats()
	m := arena.Metrics()
	_, err := fmt.Fprintf(w, "dynamic: size=%d cap=%d reallocations=%d arena=%d/%d\n",
		st.Size, st.Capacity, st.Reallocations, m.SizeInUse, m.Capacity)
	return err
}

func printArray(w io.Writer, arr *arrays.FixedArray[int]) error {
	fields := make([]string, 0, arr.Size())
	for _, v := range arr.All() {
		fields = append(fields, strconv.Itoa(v))
	}
	_, err := fmt.Fprintln(w, strings.Join(fields, " "))
	return err
}
