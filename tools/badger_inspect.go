package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Offline inspector for the message-log partitions. Unlike cmd/viewer
// it needs no HTTP server: it scans a prefix and dumps one table.
func main() {
	dbPath := flag.String("db", "./lab-data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Partition", "Seq", "Sender", "Kind", "Payload", "Sent At"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			// Sequence counters carry no body worth rendering.
			if strings.HasPrefix(key, "seq:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				var body struct {
					SenderName string `json:"sender_name"`
					Kind       string `json:"kind"`
					Payload    string `json:"payload"`
					SentAt     string `json:"sent_at"`
				}
				if err := json.Unmarshal(v, &body); err != nil {
					// Log and keep scanning instead of aborting the dump.
					fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
					return nil
				}

				partition, seq := splitMessageKey(key)
				table.Append([]string{key, partition, seq, body.SenderName, body.Kind, body.Payload, body.SentAt})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func splitMessageKey(key string) (partition, seq string) {
	parts := strings.Split(key, ":")
	if len(parts) < 4 || parts[0] != "msg" {
		return "-", "-"
	}
	return parts[1], strings.TrimLeft(parts[2], "0")
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
