package main

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/chzyer/readline"

	"github.com/aprildenise/photos/internal/cli"
	"github.com/aprildenise/photos/internal/config"
	"github.com/aprildenise/photos/internal/data"
	applog "github.com/aprildenise/photos/internal/log"
	"github.com/aprildenise/photos/internal/ui"
)

func main() {
	fmt.Println("Welcome to Photos! Use 'help' for the list of commands.")

	// Load configuration
	if err := config.ConfigLoad(); err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := config.ConfigGet()

	// Initialize the command and error logs
	logger, err := applog.NewLogger(cfg.LogDir, cfg.CommandLog, cfg.ErrorLog)
	if err != nil {
		stdlog.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logger.Close()

	// Open the library: load the snapshot, or start fresh with the built-in
	// accounts when there is no usable one. Only the initial save of a fresh
	// library can fail here, and that is not fatal.
	db, err := data.Open(cfg.SnapshotPath(), cfg.AssetDir)
	if err != nil {
		_ = logger.LogError(err)
		fmt.Printf("Warning: %v\n", err)
	}

	// Initialize readline with history file from config
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "photos> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		stdlog.Fatalf("Failed to initialize readline: %v", err)
	}
	defer rl.Close()

	shell := cli.NewCLI(db, rl, ui.New(os.Stdout), logger)

	// Main loop
	for {
		err := shell.Run()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Println("Use 'exit' or 'quit' to leave the program.")
				continue
			} else if errors.Is(err, io.EOF) {
				break
			}
			fmt.Println("Error:", err)
		}
	}

	// Final save on the way out
	if err := db.Save(); err != nil {
		_ = logger.LogError(err)
		fmt.Printf("Warning: failed to save library: %v\n", err)
	}
	fmt.Println("Goodbye!")
}
