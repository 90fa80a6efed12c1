package main

import (
	"flag"
	"log"
	"strings"

	"github.com/I-Am-Dench/kstring"
)

type CommandList map[string]func(args []string)

func (list *CommandList) Usage() {
	keys := []string{}
	for key := range *list {
		keys = append(keys, key)
	}

	log.Fatalf("expected subcommand: {%s}", strings.Join(keys, "|"))
}

func GetArgFilename(flagset *flag.FlagSet, i int, message ...string) string {
	m := "no filename provided"
	if len(message) > 0 {
		m = message[0]
	}

	if flagset.NArg() < i+1 {
		log.Fatal(m)
	}

	return flagset.Args()[i]
}

func ParseEncoding(name string) (kstring.Encoding, bool) {
	switch strings.ToLower(name) {
	case "utf8":
		return kstring.Utf8, true
	case "utf16le":
		return kstring.Utf16LE, true
	case "utf16be":
		return kstring.Utf16BE, true
	case "ansi":
		return kstring.Ansi, true
	default:
		return kstring.Utf8, false
	}
}
