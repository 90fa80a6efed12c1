package main

import (
	"flag"
	"log"
	"os"

	"github.com/I-Am-Dench/kstring"
)

func doConvert(args []string) {
	flagset := flag.NewFlagSet("convert", flag.ExitOnError)
	flagset.BoolVar(&VerboseFlag, "v", false, "Verbose mode.")
	fromName := flagset.String("from", "utf8", "Encoding of the input file: {utf8|utf16le|utf16be|ansi}")
	toName := flagset.String("to", "utf16le", "Encoding of the output file: {utf8|utf16le|utf16be|ansi}")
	flagset.Parse(args)

	from, ok := ParseEncoding(*fromName)
	if !ok {
		log.Fatalf("unknown encoding: %s", *fromName)
	}

	to, ok := ParseEncoding(*toName)
	if !ok {
		log.Fatalf("unknown encoding: %s", *toName)
	}

	input := GetArgFilename(flagset, 0, "no input file provided")
	output := GetArgFilename(flagset, 1, "no output file provided")

	data, err := os.ReadFile(input)
	if err != nil {
		Error.Fatal(err)
	}

	str := kstring.New(data, from)
	defer str.Destroy()

	if !str.IsValid() {
		log.Fatalf("cannot represent %s as a string value", input)
	}

	converted := str.Convert(to)
	defer converted.Destroy()

	if !converted.IsValid() {
		log.Fatalf("cannot convert %s from %v to %v", input, from, to)
	}

	Verbose.Printf("%v: %d bytes -> %v: %d bytes", from, str.Size(), to, converted.Size())

	if err := os.WriteFile(output, converted.Bytes(), 0666); err != nil {
		Error.Fatal(err)
	}
}
