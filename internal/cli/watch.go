package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/jdmorgan/noughts/internal/model"
)

var watchCmd = &cobra.Command{
	Use:   "watch <player-id>",
	Short: "Connect as a player and stream live match events",
	Long:  "Opens a websocket connection, registers the given player id and prints events as they arrive. Interrupt to stop.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		playerID := args[0]
		url := client.WebsocketURL()

		if cfg.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "connecting to %s\n", url)
		}

		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		defer func() { _ = conn.Close() }()

		reg := model.ClientMessage{Type: model.EventRegister, ID: model.PlayerID(playerID)}
		if err := conn.WriteJSON(reg); err != nil {
			return fmt.Errorf("failed to register: %w", err)
		}

		events := make(chan model.Event)
		errs := make(chan error, 1)
		go func() {
			for {
				var ev model.Event
				if err := conn.ReadJSON(&ev); err != nil {
					errs <- err
					return
				}
				events <- ev
			}
		}()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

		out := cmd.OutOrStdout()
		for {
			select {
			case ev := <-events:
				if cfg.Output == OutputJSON {
					if err := printJSON(out, ev); err != nil {
						return err
					}
					continue
				}
				printEvent(out, ev)
			case err := <-errs:
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return nil
				}
				return fmt.Errorf("connection lost: %w", err)
			case <-interrupt:
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(time.Second))
				return nil
			}
		}
	},
}

func printEvent(w io.Writer, ev model.Event) {
	switch ev.Type {
	case model.EventRegisterAck:
		fmt.Fprintln(w, "registered")
	case model.EventMatchCreated:
		fmt.Fprintf(w, "match %s created, waiting for an opponent\n", ev.MatchID)
	case model.EventOpponentFound:
		fmt.Fprintf(w, "opponent joined match %s\n", ev.MatchID)
	case model.EventTurnMade:
		fmt.Fprintf(w, "turn made in match %s:\n", ev.MatchID)
		printBoard(w, ev.Board)
	case model.EventGameEnded:
		if ev.Draw {
			fmt.Fprintf(w, "match %s ended in a draw\n", ev.MatchID)
		} else {
			fmt.Fprintf(w, "match %s won by %s\n", ev.MatchID, ev.WinnerID)
		}
	default:
		fmt.Fprintf(w, "event: %s\n", ev.Type)
	}
}
