// Package main dumps the partition database for debugging.
//
// Usage:
//
//	DATA_PATH=~/.musclemap go run ./cmd/dbinspect
package main

import (
	"encoding/json/jsontext"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		dataPath = filepath.Join(home, ".musclemap")
	}
	dbPath := filepath.Join(dataPath, "db")

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Partition Inspection ===")
	fmt.Println()

	err = db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Prefix = []byte("partition:")
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			name := strings.TrimPrefix(string(item.Key()), "partition:")

			err := item.Value(func(val []byte) error {
				fmt.Printf("--- %s (%d bytes) ---\n", name, len(val))

				if name == "session-marker" {
					// Opaque token, do not print the contents.
					fmt.Println("(opaque session marker present)")
					fmt.Println()
					return nil
				}

				var buf strings.Builder
				if err := jsontext.NewEncoder(&buf, jsontext.WithIndent("  ")).WriteValue(jsontext.Value(val)); err != nil {
					fmt.Printf("(not valid JSON: %v)\n", err)
				} else {
					fmt.Println(buf.String())
				}
				fmt.Println()
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to inspect database: %v", err)
	}
}
