// Command selfplay runs AI-vs-AI games for smoke testing the rules engine.
// Each finished or aborted game is snapshotted into the store.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/monistowl/enoch/internal/ai"
	"github.com/monistowl/enoch/internal/arrays"
	"github.com/monistowl/enoch/internal/game"
	"github.com/monistowl/enoch/internal/session"
	"github.com/monistowl/enoch/internal/storage"
)

var (
	numGames = flag.Int("games", 10, "number of games to play")
	maxMoves = flag.Int("max-moves", 400, "abort a game after this many moves")
	greedy   = flag.Bool("greedy", false, "prefer captures instead of uniform random moves")
	dbDir    = flag.String("db", "", "database directory (default: platform data dir)")
	saveAll  = flag.Bool("save", false, "snapshot every final position into the store")
)

func main() {
	flag.Parse()

	var store *storage.Store
	if *saveAll {
		var err error
		if *dbDir != "" {
			store, err = storage.Open(*dbDir)
		} else {
			store, err = storage.OpenDefault()
		}
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer store.Close()
	}

	manager := session.NewManager()
	wins := make(map[string]int)
	draws, aborted := 0, 0

	for i := 0; i < *numGames; i++ {
		sess := manager.Create(game.FromArraySpec(arrays.DefaultArray()))
		result, moves := playOut(sess.Game)
		switch result {
		case "draw":
			draws++
		case "aborted":
			aborted++
		default:
			wins[result]++
		}
		log.Printf("game %d: %s after %d moves", i+1, result, moves)

		if store != nil {
			name := fmt.Sprintf("selfplay-%s", sess.ID)
			if err := store.SaveGame(name, sess.Game); err != nil {
				log.Printf("save %s: %v", name, err)
			}
		}
		manager.Remove(sess.ID)
	}

	fmt.Printf("games: %d  air: %d  earth: %d  draws: %d  aborted: %d\n",
		*numGames, wins["Air"], wins["Earth"], draws, aborted)
}

// playOut plays a single game to completion and returns the outcome plus the
// number of moves played. The outcome is the winning team's name, "draw", or
// "aborted" when the move cap or a dead position is reached.
func playOut(g *game.Game) (string, int) {
	pick := ai.RandomMove
	if *greedy {
		pick = ai.CapturePreferringMove
	}

	for moves := 0; moves < *maxMoves; moves++ {
		if team, over := g.WinningTeam(); over {
			return team.String(), moves
		}
		if g.DrawCondition() {
			return "draw", moves
		}

		army := g.CurrentArmy()
		mv, ok := pick(g, army)
		if !ok {
			// No mover anywhere: every army is frozen or stalemated.
			return "aborted", moves
		}
		if _, err := g.ApplyMove(army, mv.From(), mv.To(), mv.Promotion()); err != nil {
			log.Printf("engine bug: picked move rejected: %v", err)
			return "aborted", moves
		}
	}
	return "aborted", *maxMoves
}
