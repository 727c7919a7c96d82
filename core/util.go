package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	// LevelTrace sits below slog.LevelDebug and is used for per-event
	// execution logs.
	LevelTrace slog.Level = slog.LevelDebug - 4
)

// Trace logs at LevelTrace through the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// DumpTape renders every cell of the tape as a table, columns cells per
// row, with the cell under the head shown in brackets.
func DumpTape(w io.Writer, tape *Tape, columns int) error {
	if columns < 1 {
		columns = 1
	}

	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("Tape (head=%d, cells=%d)", tape.Head(), tape.Len()))

	header := table.Row{"Cell"}
	for c := 0; c < columns; c++ {
		header = append(header, fmt.Sprintf("+%d", c))
	}
	tw.AppendHeader(header)

	for base := 0; base < len(tape.cells); base += columns {
		row := table.Row{base}
		for idx := base; idx < base+columns && idx < len(tape.cells); idx++ {
			value := fmt.Sprintf("%d", tape.cells[idx])
			if idx == tape.head {
				value = "[" + value + "]"
			}
			row = append(row, value)
		}
		tw.AppendRow(row)
	}

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

// LogState writes a debug checkpoint of a core's state.
func LogState(name string, state *coreState) {
	slog.Debug("StateCheckpoint",
		"Core", name,
		"Head", state.Tape.Head(),
		"Cells", state.Tape.Len(),
		"Value", state.Tape.Read(),
		"Steps", state.Steps,
	)
}
