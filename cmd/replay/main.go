package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/golang/glog"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/game"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/renderer"
)

var (
	file      = flag.String("file", "", "recording to play; empty lists the recordings in -records")
	recordDir = flag.String("records", config.RecordDir, "directory holding recordings")
	frame     = flag.Duration("frame", config.ReplayFrame, "delay between replayed steps")
)

// RecordFile describes one recording on disk
type RecordFile struct {
	Name string
	Size int64
	Time time.Time
}

func main() {
	flag.Parse()
	defer glog.Flush()

	var err error
	if *file == "" {
		err = list(*recordDir)
	} else {
		err = play(*file, *frame)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		glog.Flush()
		os.Exit(1)
	}
}

func listRecords(dir string) ([]RecordFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var records []RecordFile
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".jsonl" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		records = append(records, RecordFile{Name: e.Name(), Size: info.Size(), Time: info.ModTime()})
	}

	// Sort by time desc
	sort.Slice(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})
	return records, nil
}

func list(dir string) error {
	records, err := listRecords(dir)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("No recordings found in %s\n", dir)
		return nil
	}
	fmt.Println("📼 Replay Library")
	for _, r := range records {
		fmt.Printf("  %s  %8d bytes  %s\n", r.Time.Format("2006-01-02 15:04:05"), r.Size, filepath.Join(dir, r.Name))
	}
	return nil
}

func play(path string, delay time.Duration) error {
	records, err := game.ReadRecords(path)
	if err != nil && len(records) == 0 {
		return err
	}
	if err != nil {
		glog.Warningf("%s is truncated, playing %d steps: %v", path, len(records), err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%s has no steps", path)
	}

	r := renderer.NewTerminalRenderer(records[0].State.Size)
	r.HideCursor()
	defer r.ShowCursor()

	for _, rec := range records {
		if err := r.Render(rec.State); err != nil {
			return err
		}
		fmt.Printf("  step %d/%d  session %s\n", rec.Step, len(records), rec.SessionID)
		time.Sleep(delay)
	}
	return nil
}
