// Package logging wires the process logger: JSON lines on stdout for every
// record, with ERROR+ records additionally batched into the system_logs
// table once the database is up.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the stdout JSON logger as the slog default. The server
// swaps in a Fanout that adds the database sink after connecting.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
