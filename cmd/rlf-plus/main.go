// SPDX-License-Identifier: MIT

// Command rlf-plus computes an RLF-Plus coloring of a DIMACS binary
// instance.
//
// Usage: rlf-plus <graph.b> [seed]
package main

import (
	"fmt"
	"os"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sgualandi/rlfcoloring/dimacs"
	"github.com/sgualandi/rlfcoloring/rlf"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: rlf-plus <graph.b> [seed]")
		os.Exit(1)
	}

	seed := int64(1)
	if len(os.Args) == 3 {
		s, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			log.Fatal().Err(err).Str("arg", os.Args[2]).Msg("invalid seed")
		}
		seed = s
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Str("file", os.Args[1]).Msg("cannot open graph file")
	}
	defer f.Close()

	g, err := dimacs.DecodeBinary(f)
	if err != nil {
		log.Fatal().Err(err).Str("file", os.Args[1]).Msg("cannot decode graph file")
	}

	var before, after syscall.Rusage
	_ = syscall.Getrusage(syscall.RUSAGE_SELF, &before)

	res, err := rlf.Color(g, rlf.Plus, rlf.WithSeed(seed))
	if err != nil {
		log.Fatal().Err(err).Msg("coloring failed")
	}

	_ = syscall.Getrusage(syscall.RUSAGE_SELF, &after)
	cpu, sys := rusageDelta(before, after)

	fmt.Printf("X(G): %d\tCPU: %.3f sec   Sys: %.3f sec\n", res.K, cpu, sys)
}

func rusageDelta(before, after syscall.Rusage) (cpu, sys float64) {
	cpu = timevalSeconds(after.Utime) - timevalSeconds(before.Utime)
	sys = timevalSeconds(after.Stime) - timevalSeconds(before.Stime)
	return cpu, sys
}

func timevalSeconds(tv syscall.Timeval) float64 {
	return float64(tv.Sec) + float64(tv.Usec)/1e6
}
