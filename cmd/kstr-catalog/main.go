package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/I-Am-Dench/kstring"

	_ "github.com/mattn/go-sqlite3"
)

const Usage = `Usage:
	kstr-catalog build [options] <input file> [database file]
	kstr-catalog lookup [options] <database file> <string>`

func usage(flagset *flag.FlagSet) func() {
	return func() {
		fmt.Println(Usage)
		fmt.Println("\nOptions:")
		flagset.PrintDefaults()
	}
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

func main() {
	log.SetFlags(0)
	log.SetPrefix("kstr-catalog: ")

	flagset := flag.NewFlagSet("kstr-catalog", flag.ExitOnError)
	encodingName := flagset.String("encoding", "utf8", "Encoding tag for catalogued strings: {utf8|utf16le|utf16be|ansi}")
	flagset.Usage = usage(flagset)

	if len(os.Args) < 2 {
		flagset.Usage()
		return
	}

	flagset.Parse(os.Args[2:])

	encoding, ok := ParseEncoding(*encodingName)
	if !ok {
		log.Fatalf("unknown encoding: %s", *encodingName)
	}

	switch subcommand := os.Args[1]; subcommand {
	case "build":
		input := flagset.Arg(0)
		if len(input) == 0 {
			log.Fatal("missing input file")
		}

		output := flagset.Arg(1)
		if len(output) == 0 {
			output = "catalog.db"
		}

		if err := Build(input, output, encoding); err != nil {
			log.Fatal(err)
		}
	case "lookup":
		database := flagset.Arg(0)
		if len(database) == 0 {
			log.Fatal("missing database file")
		}

		value := flagset.Arg(1)
		if len(value) == 0 {
			log.Fatal("missing string to look up")
		}

		if err := Lookup(database, value, encoding); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown subcommand: %s", subcommand)
	}
}
