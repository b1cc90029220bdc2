package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tilelapse/internal/config"
	"tilelapse/internal/logging"
	"tilelapse/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	closeLog, err := logging.Setup(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	var m tea.Model
	switch {
	case len(os.Args) > 1:
		m = tui.NewWithLayer(cfg, os.Args[1])
	case cfg.Map.Layer != "":
		m = tui.NewWithLayer(cfg, cfg.Map.Layer)
	default:
		m = tui.New(cfg)
	}
	if err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Start(); err != nil {
		log.Fatal(err)
	}
}
