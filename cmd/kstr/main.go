package main

import (
	"log"
	"os"
)

var VerboseFlag bool

type verboseWriter struct{}

func (v *verboseWriter) Write(b []byte) (int, error) {
	if VerboseFlag {
		return os.Stdout.Write(b)
	} else {
		return len(b), nil
	}
}

var (
	Info    = log.New(os.Stdout, "kstr: ", 0)
	Error   = log.New(os.Stderr, "kstr: ", 0)
	Verbose = log.New(&verboseWriter{}, "kstr: ", 0)
)

var Commands = CommandList{
	"info":    doInfo,
	"compare": doCompare,
	"convert": doConvert,
}

func main() {

	if len(os.Args) < 2 {
		Commands.Usage()
	}

	command, ok := Commands[os.Args[1]]
	if !ok {
		Commands.Usage()
	}

	command(os.Args[2:])
}
