// Command enoch is an interactive terminal front end for the rules engine.
// It reads commands from stdin, one per line, and prints the board and
// move results to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/monistowl/enoch/internal/arrays"
	"github.com/monistowl/enoch/internal/board"
	"github.com/monistowl/enoch/internal/game"
	"github.com/monistowl/enoch/internal/storage"
)

var (
	arrayName = flag.String("array", "", "starting array name (default: Tablet of Fire)")
	dbDir     = flag.String("db", "", "database directory (default: platform data dir)")
)

func main() {
	flag.Parse()

	spec := arrays.DefaultArray()
	if *arrayName != "" {
		found, ok := arrays.FindArrayByName(*arrayName)
		if !ok {
			log.Fatalf("unknown array %q; use the arrays command to list them", *arrayName)
		}
		spec = found
	}
	if len(spec.Placements) == 0 {
		log.Fatalf("array %q has no piece layout yet", spec.Name)
	}

	store, err := openStore(*dbDir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	g := game.FromArraySpec(spec)
	fmt.Printf("Enochian chess: %s\n", spec.Name)
	printBoard(g)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", g.CurrentArmy())
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "board":
			printBoard(g)
		case "status":
			printStatus(g)
		case "arrays":
			for _, s := range arrays.AvailableArrays() {
				fmt.Printf("  %s: %s\n", s.Name, s.Description)
			}
		case "legal":
			cmdLegal(g, fields[1:])
		case "move":
			cmdMove(g, fields[1:])
		case "exchange":
			cmdExchange(g, fields[1:])
		case "save":
			if len(fields) != 2 {
				fmt.Println("usage: save <name>")
				continue
			}
			if err := store.SaveGame(fields[1], g); err != nil {
				fmt.Printf("save failed: %v\n", err)
			} else {
				fmt.Printf("saved as %q\n", fields[1])
			}
		case "load":
			if len(fields) != 2 {
				fmt.Println("usage: load <name>")
				continue
			}
			loaded, err := store.LoadGame(fields[1])
			if err != nil {
				fmt.Printf("load failed: %v\n", err)
				continue
			}
			g = loaded
			printBoard(g)
		case "saves":
			names, err := store.ListGames()
			if err != nil {
				fmt.Printf("list failed: %v\n", err)
				continue
			}
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
		case "delete":
			if len(fields) != 2 {
				fmt.Println("usage: delete <name>")
				continue
			}
			if err := store.DeleteGame(fields[1]); err != nil {
				fmt.Printf("delete failed: %v\n", err)
			}
		default:
			fmt.Printf("unknown command %q; try help\n", fields[0])
		}

		if team, over := g.WinningTeam(); over {
			fmt.Printf("%s wins!\n", team)
			return
		}
		if g.DrawCondition() {
			fmt.Println("Drawn: neither team can win.")
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}
}

func openStore(dir string) (*storage.Store, error) {
	if dir != "" {
		return storage.Open(dir)
	}
	return storage.OpenDefault()
}

func cmdLegal(g *game.Game, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: legal <square>")
		return
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		fmt.Printf("bad square: %v\n", err)
		return
	}
	army, _, occupied := g.Board.PieceAt(sq)
	if !occupied {
		fmt.Printf("%s is empty\n", sq)
		return
	}
	moves := g.LegalMoves(army)
	var dests []string
	for i := 0; i < moves.Len(); i++ {
		if mv := moves.Get(i); mv.From() == sq {
			dests = append(dests, mv.To().String())
		}
	}
	if len(dests) == 0 {
		fmt.Printf("%s has no legal moves from %s\n", army, sq)
		return
	}
	fmt.Printf("%s: %s\n", sq, strings.Join(dests, " "))
}

func cmdMove(g *game.Game, args []string) {
	if len(args) < 2 || len(args) > 3 {
		fmt.Println("usage: move <from> <to> [qrbn]")
		return
	}
	from, err := board.ParseSquare(args[0])
	if err != nil {
		fmt.Printf("bad square: %v\n", err)
		return
	}
	to, err := board.ParseSquare(args[1])
	if err != nil {
		fmt.Printf("bad square: %v\n", err)
		return
	}
	promotion := board.NoPieceKind
	if len(args) == 3 {
		promotion = board.PieceKindFromChar(args[2][0])
		if promotion == board.NoPieceKind {
			fmt.Printf("bad promotion piece %q\n", args[2])
			return
		}
	}

	result, err := g.ApplyMove(g.CurrentArmy(), from, to, promotion)
	if err != nil {
		fmt.Printf("rejected: %v\n", err)
		return
	}
	fmt.Println(result)
	printBoard(g)
}

func cmdExchange(g *game.Game, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: exchange <army> <army>")
		return
	}
	a, okA := parseArmy(args[0])
	b, okB := parseArmy(args[1])
	if !okA || !okB {
		fmt.Println("armies are blue, black, red or yellow")
		return
	}
	if !g.ExchangePrisoners(a, b) {
		fmt.Println("exchange refused: both kings must be captured")
		return
	}
	fmt.Printf("%s and %s kings restored to their thrones\n", a, b)
	printBoard(g)
}

func parseArmy(name string) (board.Army, bool) {
	for _, army := range board.Armies {
		if strings.EqualFold(army.String(), name) {
			return army, true
		}
	}
	return board.NoArmy, false
}

func printBoard(g *game.Game) {
	for _, row := range g.AsciiRows() {
		fmt.Println(row)
	}
}

func printStatus(g *game.Game) {
	fmt.Printf("turn: %s\n", g.CurrentArmy())
	for _, army := range board.Armies {
		counts := g.PieceCounts(army)
		total := 0
		for _, n := range counts {
			total += n
		}
		line := fmt.Sprintf("  %s: %d pieces", army, total)
		if g.ArmyIsFrozen(army) {
			line += " (frozen)"
		}
		if g.ArmyInStalemate(army) {
			line += " (stalemated)"
		}
		if g.KingInCheck(army) {
			line += " (in check)"
		}
		fmt.Println(line)
	}
}

func printHelp() {
	fmt.Print(`commands:
  board                 print the position
  status                turn, per-army piece counts and flags
  legal <square>        legal destinations for the piece on a square
  move <from> <to> [p]  play a move; p picks the promotion piece (qrbn)
  exchange <a> <b>      exchange prisoners between two kingless armies
  save <name>           save the game
  load <name>           load a saved game
  saves                 list saved games
  delete <name>         delete a saved game
  arrays                list starting arrays
  quit                  leave
`)
}
