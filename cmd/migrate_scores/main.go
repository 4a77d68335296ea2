package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/game"
)

var (
	in     = flag.String("in", "localstorage.json", "browser localStorage export (JSON object of string values)")
	dbPath = flag.String("db", config.DatabasePath, "SQLite file to import into")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if _, err := os.Stat(*in); os.IsNotExist(err) {
		glog.Exitf("%s not found. Export localStorage from the browser and place it here.", *in)
	}

	fileContent, err := os.ReadFile(*in)
	if err != nil {
		glog.Exitf("Failed to read %s: %v", *in, err)
	}

	scores, err := parseExport(fileContent)
	if err != nil {
		glog.Exitf("Failed to parse %s: %v", *in, err)
	}

	score, ok := scores[config.StorageKey]
	if !ok {
		glog.Exitf("%s has no %q entry", *in, config.StorageKey)
	}

	db, err := game.OpenSQLite(*dbPath)
	if err != nil {
		glog.Exitf("Failed to open DB: %v", err)
	}
	defer db.Close()

	stored, err := db.Raise(config.StorageKey, score)
	if err != nil {
		glog.Exitf("Error migrating %s: %v", config.StorageKey, err)
	}

	fmt.Printf("✅ Migration complete! %s: imported %d, stored %d in %s\n", config.StorageKey, score, stored, *dbPath)
}

// parseExport reads the numeric entries of a localStorage dump. Values may be
// strings (as localStorage stores them) or plain numbers; anything else is skipped.
func parseExport(data []byte) (map[string]int, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	scores := make(map[string]int)
	for key, msg := range raw {
		var n int
		if err := json.Unmarshal(msg, &n); err == nil {
			scores[key] = n
			continue
		}
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			continue
		}
		if n, err := strconv.Atoi(s); err == nil {
			scores[key] = n
		}
	}
	return scores, nil
}
