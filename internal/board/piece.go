package board

// Army identifies one of the four forces on the board.
type Army uint8

const (
	Blue Army = iota
	Black
	Red
	Yellow
	NoArmy Army = 4
)

// NumArmies is the number of armies in a game.
const NumArmies = 4

// Armies lists all four armies in enumeration order.
var Armies = [NumArmies]Army{Blue, Black, Red, Yellow}

// Team returns the alliance the army belongs to. The pairing is fixed:
// Blue and Black form Air, Red and Yellow form Earth.
func (a Army) Team() Team {
	switch a {
	case Blue, Black:
		return Air
	default:
		return Earth
	}
}

// String returns the army name.
func (a Army) String() string {
	switch a {
	case Blue:
		return "Blue"
	case Black:
		return "Black"
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	default:
		return "NoArmy"
	}
}

// Team identifies one of the two alliances.
type Team uint8

const (
	Air   Team = iota // Blue + Black
	Earth             // Red + Yellow
)

// NumTeams is the number of alliances.
const NumTeams = 2

// Armies returns the two armies belonging to the team.
func (t Team) Armies() [2]Army {
	if t == Air {
		return [2]Army{Blue, Black}
	}
	return [2]Army{Red, Yellow}
}

// Opponent returns the opposing team.
func (t Team) Opponent() Team {
	return t ^ 1
}

// String returns the team name.
func (t Team) String() string {
	if t == Air {
		return "Air"
	}
	return "Earth"
}

// PlayerID identifies which controlling side an army answers to.
type PlayerID uint8

const (
	PlayerOne PlayerID = iota
	PlayerTwo
)

// String returns the player name.
func (p PlayerID) String() string {
	if p == PlayerOne {
		return "Player One"
	}
	return "Player Two"
}

// PieceKind represents the type of a piece. The tag is closed: exactly six
// kinds exist and move generation dispatches on it exhaustively.
type PieceKind uint8

const (
	King PieceKind = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
	NoPieceKind PieceKind = 6
)

// NumPieceKinds is the number of piece kinds.
const NumPieceKinds = 6

// PieceKinds lists all six kinds in enumeration order.
var PieceKinds = [NumPieceKinds]PieceKind{King, Queen, Bishop, Knight, Rook, Pawn}

// String returns the piece kind name.
func (pk PieceKind) String() string {
	switch pk {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Rook:
		return "Rook"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

// Char returns the board-letter for the piece kind (uppercase).
func (pk PieceKind) Char() byte {
	chars := []byte{'K', 'Q', 'B', 'N', 'R', 'P', ' '}
	if pk > NoPieceKind {
		return ' '
	}
	return chars[pk]
}

// PieceKindFromChar converts a letter to a PieceKind, case-insensitively.
func PieceKindFromChar(c byte) PieceKind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'R', 'r':
		return Rook
	case 'P', 'p':
		return Pawn
	default:
		return NoPieceKind
	}
}
