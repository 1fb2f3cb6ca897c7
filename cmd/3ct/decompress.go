// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/trapexit/3ct/lzss"
)

type decompressCmd struct {
	InputFilepath  string `arg:"" type:"existingfile" help:"Path to input file"`
	OutputFilepath string `arg:"" optional:"" type:"path" help:"Path to output file (default: input + '.decompressed')"`
}

func (cmd *decompressCmd) Run() error {
	srcPath := cmd.InputFilepath
	dstPath := cmd.OutputFilepath
	if dstPath == "" {
		dstPath = srcPath + ".decompressed"
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", srcPath)
	}
	defer src.Close()

	srcSize, err := fileSize(src)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", srcPath)
	}
	if srcSize%4 != 0 {
		logrus.Warn("input file is not a multiple of 4 bytes. " +
			"The file may be corrupted or not a 3DO compressed file.")
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", dstPath)
	}
	defer dst.Close()

	if err := decompressFile(src, dst); err != nil {
		return errors.Wrapf(err, "failed to decompress %s", srcPath)
	}

	dstSize, err := fileSize(dst)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", dstPath)
	}

	report(srcPath, srcSize, dstPath, dstSize)
	return nil
}

func decompressFile(src io.Reader, dst io.Writer) error {
	br := bufio.NewReader(src)
	bw := bufio.NewWriter(dst)

	r := lzss.NewReader(br)
	if _, err := io.Copy(bw, r); err != nil {
		return err
	}

	// The reader stops at the end-of-stream marker; anything still
	// buffered is trailing data after the compressed stream.
	if _, err := br.ReadByte(); err != io.EOF {
		logrus.Warn("data remains after end of compressed stream")
	}

	return bw.Flush()
}
