package storage

import "github.com/vovakirdan/tui-runner/internal/runner"

var (
	_ runner.HighScores    = (*Book)(nil)
	_ runner.ScoreRecorder = (*Book)(nil)
)

// Book binds a Store to one board and player, the way a session sees it.
type Book struct {
	store  *Store
	board  string
	player string
}

// Book returns the score book of player on a board.
func (s *Store) Book(boardID, player string) *Book {
	return &Book{store: s, board: boardID, player: player}
}

// BoardID names the board of a theme and variant, e.g. "classic" or
// "classic/slow".
func BoardID(themeID, variant string) string {
	if variant == "" || variant == "normal" {
		return themeID
	}
	return themeID + "/" + variant
}

func (b *Book) LoadHighScore() (int, error) {
	return b.store.HighScore(b.board, b.player)
}

func (b *Book) SaveHighScore(score int) error {
	return b.store.SetHighScore(b.board, b.player, score)
}

func (b *Book) RecordScore(score int) error {
	_, err := b.store.RecordScore(b.board, b.player, score)
	return err
}

func (b *Book) Board() string  { return b.board }
func (b *Book) Player() string { return b.player }
