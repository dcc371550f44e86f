package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jdmorgan/noughts/internal/api/response"
)

const (
	// OutputText renders human-readable output
	OutputText = "text"
	// OutputJSON renders raw JSON output
	OutputJSON = "json"
)

// printJSON writes a value as indented JSON
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printMatch writes a match in human-readable form
func printMatch(w io.Writer, m *response.Match) {
	fmt.Fprintf(w, "Match:    %s\n", m.MatchID)
	fmt.Fprintf(w, "Status:   %s\n", m.Status)
	fmt.Fprintf(w, "Player 1: %s", m.Player1ID)
	if m.Player1Name != "" {
		fmt.Fprintf(w, " (%s)", m.Player1Name)
	}
	fmt.Fprintln(w)
	if m.Player2ID != "" {
		fmt.Fprintf(w, "Player 2: %s", m.Player2ID)
		if m.Player2Name != "" {
			fmt.Fprintf(w, " (%s)", m.Player2Name)
		}
		fmt.Fprintln(w)
	}
	if m.Winner != nil {
		fmt.Fprintf(w, "Winner:   %s\n", *m.Winner)
	}
}

// printBoard writes a board grid in human-readable form
func printBoard(w io.Writer, grid [][]int) {
	marks := map[int]string{0: ".", 1: "X", 2: "O"}
	for _, row := range grid {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, marks[cell])
		}
		fmt.Fprintln(w)
	}
}
