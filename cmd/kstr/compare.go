package main

import (
	"flag"
	"log"

	"github.com/I-Am-Dench/kstring"
)

func doCompare(args []string) {
	flagset := flag.NewFlagSet("compare", flag.ExitOnError)
	fold := flagset.Bool("fold", false, "Case-insensitive (ASCII only) comparison.")
	flagset.Parse(args)

	if flagset.NArg() < 2 {
		log.Fatal("expected two strings to compare")
	}

	a := kstring.FromString(flagset.Arg(0), kstring.Utf8)
	b := kstring.FromString(flagset.Arg(1), kstring.Utf8)
	defer a.Destroy()
	defer b.Destroy()

	if *fold {
		Info.Printf("compare: %d", a.CompareFold(b))
		Info.Printf("equal: %t", a.EqualFold(b))
		Info.Printf("prefix: %t", a.HasPrefixFold(b))
	} else {
		Info.Printf("compare: %d", a.Compare(b))
		Info.Printf("equal: %t", a.Equal(b))
		Info.Printf("prefix: %t", a.HasPrefix(b))
	}
}
