package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"huffenc/env"
	"huffenc/huffman"
)

var encodeFile = huffman.EncodeFile

func main() {
	os.Exit(run())
}

func run() (code int) {
	log := logrus.StandardLogger()
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[Main]Unexpected fault:%v\n", r)
			env.TraceError(log, "[Main]")
			code = 2
		}
	}()
	s, err := env.InitEncoder()
	if err != nil {
		return 1
	}
	log = env.NewLogger("Encode")
	opts := []huffman.Option{huffman.WithLogger(log)}
	if s.Report {
		opts = append(opts, huffman.WithReport(os.Stdout))
	}
	if _, err := encodeFile(s.InputPath, s.OutputPath, opts...); err != nil {
		switch {
		case os.IsNotExist(errors.Cause(err)):
			log.Errorf("File '%s' not found.\n", s.InputPath)
		case errors.Is(err, huffman.ErrEmptyInput):
			log.Errorf("File '%s' is empty, nothing to encode.\n", s.InputPath)
		default:
			log.Errorf("An error occurred: %+v\n", err)
		}
		return 1
	}
	return 0
}
