package main

import (
	"bufio"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/I-Am-Dench/kstring"
)

// Build reads input line by line, deduplicates lines by content checksum,
// and writes a catalog database alongside a bodies blob. Each row stores
// the value's 16 byte record; long records reference their body's offset
// in the blob, short records carry their content inline.
func Build(input, output string, encoding kstring.Encoding) error {
	file, err := os.Open(input)
	if err != nil {
		return err
	}
	defer file.Close()

	db, err := sql.Open("sqlite3", output)
	if err != nil {
		return fmt.Errorf("open database: %v", err)
	}
	defer db.Close()

	bodies, err := os.Create(output + ".bodies")
	if err != nil {
		return fmt.Errorf("create bodies: %v", err)
	}
	defer bodies.Close()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DROP TABLE IF EXISTS strings"); err != nil {
		return err
	}

	if _, err := tx.Exec("CREATE TABLE strings (crc INTEGER PRIMARY KEY, length INTEGER, encoding TEXT, inline INTEGER, record BLOB)"); err != nil {
		return err
	}

	seen := map[uint32]bool{}
	offset := uint64(0)
	total := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		str := kstring.New(scanner.Bytes(), encoding)
		if !str.IsValid() {
			continue
		}

		crc := str.Checksum()
		if seen[crc] {
			str.Destroy()
			continue
		}
		seen[crc] = true

		bodyRef := uint64(0)
		if !str.IsShort() {
			bodyRef = offset

			n, err := bodies.Write(str.Terminated())
			if err != nil {
				str.Destroy()
				return fmt.Errorf("write body: %v", err)
			}
			offset += uint64(n)
		}

		record, err := str.EncodeRecord(bodyRef)
		if err != nil {
			str.Destroy()
			return err
		}

		if _, err := tx.Exec(
			"INSERT INTO strings VALUES (?, ?, ?, ?, ?)",
			int64(crc), str.Size(), str.Encoding().String(), str.IsShort(), record[:],
		); err != nil {
			str.Destroy()
			return fmt.Errorf("insert: %v", err)
		}

		str.Destroy()
		total++
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	fmt.Printf("catalogued %d unique strings (%d body bytes)\n", total, offset)
	return nil
}

// Lookup checks whether value is catalogued in database, keyed by its
// content checksum under the given encoding tag.
func Lookup(database, value string, encoding kstring.Encoding) error {
	str := kstring.FromString(value, encoding)
	defer str.Destroy()

	db, err := sql.Open("sqlite3", database)
	if err != nil {
		return fmt.Errorf("open database: %v", err)
	}
	defer db.Close()

	var (
		length       int
		encodingName string
		inline       bool
	)

	row := db.QueryRow("SELECT length, encoding, inline FROM strings WHERE crc = ?", int64(str.Checksum()))
	if err := row.Scan(&length, &encodingName, &inline); errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("not catalogued: %q", value)
	} else if err != nil {
		return err
	}

	fmt.Printf("crc: %08x\nlength: %d\nencoding: %s\ninline: %t\n", str.Checksum(), length, encodingName, inline)
	return nil
}
