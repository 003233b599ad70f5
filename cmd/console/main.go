package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TheFirstLairron/Rusty-Rogues/internal/config"
	"github.com/TheFirstLairron/Rusty-Rogues/internal/storage"
)

func main() {
	cfg := config.Load()

	// The terminal belongs to the UI, so storage logs go nowhere.
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := storage.NewFileStorage(cfg.SavePath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open save directory %s: %v\n", cfg.SavePath, err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewConsoleUI(store),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
