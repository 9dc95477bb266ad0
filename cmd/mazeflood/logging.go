package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const logFlags = log.LstdFlags | log.Lshortfile

// setupLogging returns the process logger. Without debug everything is
// discarded. With debug, logs go to path when it is set (the terminal
// viewer owns stderr) and to stderr otherwise. The returned file, if any,
// must be closed by the caller.
func setupLogging(debug bool, path string) (*log.Logger, *os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return log.New(io.Discard, "", 0), nil, nil
	}
	if path == "" {
		l := log.New(os.Stderr, "[mazeflood] ", logFlags)
		log.SetOutput(os.Stderr)
		return l, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)
	return log.New(f, "[mazeflood] ", logFlags), f, nil
}
