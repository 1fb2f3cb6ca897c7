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

type compressCmd struct {
	InputFilepath  string `arg:"" type:"existingfile" help:"Path to input file"`
	OutputFilepath string `arg:"" optional:"" type:"path" help:"Path to output file (default: input + '.compressed')"`
}

func (cmd *compressCmd) Run() error {
	srcPath := cmd.InputFilepath
	dstPath := cmd.OutputFilepath
	if dstPath == "" {
		dstPath = srcPath + ".compressed"
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
			"Uncompressing this file will result in a file padded with zeros.")
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", dstPath)
	}
	defer dst.Close()

	if err := compressFile(src, dst); err != nil {
		return errors.Wrapf(err, "failed to compress %s", srcPath)
	}

	dstSize, err := fileSize(dst)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", dstPath)
	}

	report(srcPath, srcSize, dstPath, dstSize)
	return nil
}

// compressFile streams src through the compressor, zero padding the input
// to a whole number of words the way the reference tool reads files.
func compressFile(src io.Reader, dst io.Writer) error {
	bw := bufio.NewWriter(dst)
	w := lzss.NewWriter(bw)

	var total int64
	buf := make([]byte, 64*1024)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			total += int64(n)
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	if pad := int(-total & 3); pad > 0 {
		var zeros [3]byte
		if _, err := w.Write(zeros[:pad]); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}
	return bw.Flush()
}
