// SPDX-License-Identifier: MIT

// Command converter rewrites an OR-Library instance file as a DIMACS
// binary graph, writing <file>.b alongside it.
//
// Usage: converter <orlib_file>
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sgualandi/rlfcoloring/dimacs"
	"github.com/sgualandi/rlfcoloring/graphgen"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: converter <orlib_file>")
		os.Exit(1)
	}

	in, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Str("file", os.Args[1]).Msg("cannot open instance file")
	}
	defer in.Close()

	g, err := graphgen.ConvertORLibrary(in)
	if err != nil {
		log.Fatal().Err(err).Str("file", os.Args[1]).Msg("cannot parse OR-Library instance")
	}

	outName := os.Args[1] + ".b"
	out, err := os.Create(outName)
	if err != nil {
		log.Fatal().Err(err).Str("file", outName).Msg("cannot create output file")
	}
	defer out.Close()
	if err := dimacs.EncodeBinary(out, g, fmt.Sprintf("converted from %s", os.Args[1])); err != nil {
		log.Fatal().Err(err).Str("file", outName).Msg("cannot write DIMACS binary output")
	}

	log.Info().Str("in", os.Args[1]).Str("out", outName).Int("n", g.NVertices()).Int("m", g.NEdges()).Msg("converted")
}
