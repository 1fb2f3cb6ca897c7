// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command 3ct is the 3DO Compression Tool: it compresses and decompresses
// files in the 3DO SDK LZSS format and can self-check the codec against
// reference vectors.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// version gets set during build.
var version = "1.0.0"

type cli struct {
	Compress   compressCmd   `cmd:"" help:"Compress input file"`
	Decompress decompressCmd `cmd:"" help:"Decompress input file"`
	Check      checkCmd      `cmd:"" help:"Checks the compressor and decompressor against data generated by the 3DO SDK compression library"`

	Debug   bool             `help:"Enable debug output" short:"d"`
	Version kong.VersionFlag `help:"Show version and exit" short:"v"`
}

func main() {
	// Optional .env; it only sets variables not already in the environment,
	// and DefaultEnvars then binds them like real env vars.
	_ = godotenv.Load(".env")

	var c cli
	ctx := kong.Parse(&c,
		kong.Name("3ct"),
		kong.Description(fmt.Sprintf("3ct: 3DO Compression Tool (v%s)", version)),
		kong.UsageOnError(),
		kong.DefaultEnvars("TCT"),
		kong.Vars{"version": version},
	)

	if c.Debug {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.Debug("debug mode enabled")
	}

	if err := ctx.Run(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// report prints the size summary both subcommands emit.
func report(srcPath string, srcSize int64, dstPath string, dstSize int64) {
	fmt.Printf("- input:\n"+
		"  - filepath: %s\n"+
		"  - size_in_bytes: %d\n"+
		"  - size_in_words: %d\n"+
		"- output:\n"+
		"  - filepath: %s\n"+
		"  - size_in_bytes: %d\n"+
		"  - size_in_words: %d\n",
		srcPath, srcSize, srcSize/4,
		dstPath, dstSize, dstSize/4)
}

// fileSize returns the current size of an open file.
func fileSize(f *os.File) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
