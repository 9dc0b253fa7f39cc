package main

import (
	"context"
	"hash/maphash"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/schema"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/minebound/minesweeper/internal/config"
	"github.com/minebound/minesweeper/internal/session"
)

var (
	log   = logrus.New()
	store = session.NewStore()
	dec   = schema.NewDecoder()
	rnd   = rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	))
)

func init() {
	dec.IgnoreUnknownKeys(true)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	_ = godotenv.Load()

	logging, err := config.NewLogging()
	if err != nil {
		log.Fatal(err)
	}
	if err := logging.Apply(log); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.NewServer()
	if err != nil {
		log.Fatal("unable to load server config: ", err)
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: buildHandler(cfg),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", cfg.Addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
