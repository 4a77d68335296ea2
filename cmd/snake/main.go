package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/game"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/input"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/renderer"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/scheduler"
)

var (
	ui        = flag.String("ui", "ansi", "terminal front end: ansi or termbox")
	dbPath    = flag.String("db", config.DatabasePath, "SQLite file holding the high score; empty keeps it in memory")
	recordDir = flag.String("records", "", "directory for JSONL recordings; empty disables recording")
	gridSize  = flag.Int("size", config.GridSize, "cells per side")
	tick      = flag.Duration("tick", config.TickInterval, "logic tick interval")
)

type view interface {
	Render(state game.GameState) error
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run() error {
	settings := config.DefaultSettings()
	settings.Size = *gridSize
	settings.Tick = *tick
	if err := settings.Validate(); err != nil {
		return err
	}

	var store game.ScoreStore = game.NewMemoryStore()
	if *dbPath != "" {
		db, err := game.OpenSQLite(*dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		store = db
	}

	var (
		src  input.Source
		out  view
		done func()
	)
	switch *ui {
	case "ansi":
		src = input.NewKeyboardHandler()
		tr := renderer.NewTerminalRenderer(settings.Size)
		tr.HideCursor()
		out, done = tr, tr.ShowCursor
	case "termbox":
		src = input.NewTermboxHandler()
		out, done = renderer.NewTermboxSurface(settings.Size), func() {}
	default:
		return fmt.Errorf("unknown -ui %q", *ui)
	}
	if err := src.Start(); err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer src.Stop()
	defer done()

	var opts []game.Option
	if *recordDir != "" {
		opts = append(opts, game.WithRecorder(func(sessionID string) (game.Recorder, error) {
			return game.NewRecorder(*recordDir, sessionID)
		}))
	}
	ctrl := game.NewController(settings, store, rand.New(rand.NewSource(time.Now().UnixNano())), opts...)
	defer ctrl.Close()

	draw := func() {
		if err := out.Render(ctrl.Game().GetGameStateSnapshot()); err != nil {
			glog.Warningf("render: %v", err)
		}
	}
	sched := scheduler.New(settings.Tick, ctrl, draw)

	// Game loop ticker standing in for animation frames
	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case ev := <-src.Events():
			switch ev.Kind {
			case input.KindQuit:
				fmt.Println("\n  Thanks for playing! 👋")
				return nil
			case input.KindDirection:
				ctrl.Turn(ev.Dir)
			case input.KindTap:
				if ctrl.Tap() {
					sched.Restart()
				}
			}

		case now := <-ticker.C:
			// Frames are not requested while the session is over
			if sched.Running() {
				sched.OnFrame(now.Sub(start))
			}
		}
	}
}
