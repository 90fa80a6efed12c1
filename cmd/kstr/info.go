package main

import (
	"flag"
	"log"
	"os"

	"github.com/I-Am-Dench/kstring"
)

func doInfo(args []string) {
	flagset := flag.NewFlagSet("info", flag.ExitOnError)
	flagset.BoolVar(&VerboseFlag, "v", false, "Verbose mode.")
	encodingName := flagset.String("e", "utf8", "Encoding of the file contents: {utf8|utf16le|utf16be|ansi}")
	flagset.Parse(args)

	encoding, ok := ParseEncoding(*encodingName)
	if !ok {
		log.Fatalf("unknown encoding: %s", *encodingName)
	}

	path := GetArgFilename(flagset, 0)

	data, err := os.ReadFile(path)
	if err != nil {
		Error.Fatal(err)
	}

	str := kstring.New(data, encoding)
	defer str.Destroy()

	if !str.IsValid() {
		log.Fatalf("cannot represent %s as a string value", path)
	}

	Verbose.Printf("read %d bytes from %s", len(data), path)

	Info.Printf("size: %d", str.Size())
	Info.Printf("encoding: %v", str.Encoding())
	Info.Printf("inline: %t", str.IsShort())
	Info.Printf("storage: %v", str.StorageClass())
	Info.Printf("crc: %08x", str.Checksum())
}
