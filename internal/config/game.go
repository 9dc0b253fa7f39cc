package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/minebound/minesweeper/internal/field"
)

const (
	defaultWidth     = 9
	defaultHeight    = 9
	defaultMineCount = 10
)

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

// NewGameParams reads the field dimensions and mine count from the
// environment, falling back to the classic 9x9 board with 10 mines.
// The returned params are validated, so PlaceMines' precondition
// (mine count below grid size) holds for every game built from them.
func NewGameParams() (*field.Params, error) {
	width, err := lookupInt("GAME_WIDTH", defaultWidth)
	if err != nil {
		return nil, err
	}
	height, err := lookupInt("GAME_HEIGHT", defaultHeight)
	if err != nil {
		return nil, err
	}
	mineCount, err := lookupInt("GAME_MINES", defaultMineCount)
	if err != nil {
		return nil, err
	}
	params := &field.Params{
		Width:     width,
		Height:    height,
		MineCount: mineCount,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}
