package game

import (
	"errors"
	"strconv"
	"strings"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2, // open (reveal)
	"m": 2, // toggle mark
	"q": 0, // quit
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// ExecuteCommand applies one line of the text protocol to a game.
// Coordinates are 1-based as typed by the player. It reports quit=true
// for the quit command; every other validation failure is returned as
// an error before the core is touched.
func ExecuteCommand(g *Game, line string) (quit bool, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, errors.New("empty command")
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return false, errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return false, errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "q":
		return true, nil
	case "o":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return false, err
		}
		if !g.ValidPoint(x-1, y-1) {
			return false, errors.New("invalid cell coordinates")
		}
		return false, g.Reveal(x-1, y-1)
	case "m":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return false, err
		}
		if !g.ValidPoint(x-1, y-1) {
			return false, errors.New("invalid cell coordinates")
		}
		return false, g.ToggleMark(x-1, y-1)
	}
	return false, errors.New("invalid command")
}
