package main

import (
	"bufio"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/minebound/minesweeper/internal/config"
	"github.com/minebound/minesweeper/internal/game"
)

var log = logrus.New()

func main() {
	_ = godotenv.Load()

	logging, err := config.NewLogging()
	if err != nil {
		log.Fatal(err)
	}
	if err := logging.Apply(log); err != nil {
		log.Fatal(err)
	}

	params, err := config.NewGameParams()
	if err != nil {
		log.Fatal("unable to load game params: ", err)
	}

	rnd := rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	))
	g := game.New(*params, rnd)

	fmt.Printf("minesweeper %s\n", params)
	fmt.Println("commands: o x y (open), m x y (mark), q (quit)")
	fmt.Print(g.Render())

	scanner := bufio.NewScanner(os.Stdin)
	for !g.Over() {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		quit, err := game.ExecuteCommand(g, scanner.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}
		if quit {
			return
		}
		fmt.Print(g.Render())
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("unable to read input: ", err)
	}

	switch g.Status() {
	case game.Won:
		fmt.Println("you win!")
	case game.Lost:
		fmt.Println("you stepped on a mine")
	}
}
