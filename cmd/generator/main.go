// SPDX-License-Identifier: MIT

// Command generator produces a random graph instance.
//
// Usage: generator <n> <d> <s> <t>
//
//	n => vertex count
//	d => (float) edge density
//	s => RNG seed
//	t => output type: 0 -> DIMACS text, 1 -> AMPL, 2 -> DIMACS binary file
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sgualandi/rlfcoloring/graphgen"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) != 5 {
		fmt.Fprintln(os.Stderr, "usage: generator <n> <d> <s> <t>")
		os.Exit(1)
	}

	n, err := strconv.Atoi(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Str("arg", os.Args[1]).Msg("invalid n")
	}
	d, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		log.Fatal().Err(err).Str("arg", os.Args[2]).Msg("invalid density")
	}
	s, err := strconv.ParseInt(os.Args[3], 10, 64)
	if err != nil {
		log.Fatal().Err(err).Str("arg", os.Args[3]).Msg("invalid seed")
	}
	t, err := strconv.Atoi(os.Args[4])
	if err != nil {
		log.Fatal().Err(err).Str("arg", os.Args[4]).Msg("invalid type")
	}

	g, err := graphgen.RandomGraph(n, d, graphgen.WithSeed(s))
	if err != nil {
		log.Fatal().Err(err).Msg("graph generation failed")
	}

	switch t {
	case 0:
		w := bufio.NewWriter(os.Stdout)
		if err := graphgen.WriteText(w, g, s); err != nil {
			log.Fatal().Err(err).Msg("failed to write DIMACS text")
		}
		_ = w.Flush()
	case 1:
		w := bufio.NewWriter(os.Stdout)
		if err := graphgen.WriteAMPL(w, g); err != nil {
			log.Fatal().Err(err).Msg("failed to write AMPL")
		}
		_ = w.Flush()
	case 2:
		name := graphgen.BinaryFileName(n, d, s)
		if err := graphgen.WriteBinaryFile(name, g, s, d); err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("failed to write binary graph")
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown type %d: want 0, 1 or 2\n", t)
		os.Exit(1)
	}
}
