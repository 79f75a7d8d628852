//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifepad/internal/app"
	"lifepad/internal/core"
	"lifepad/internal/save"
	"lifepad/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	store, err := save.OpenFile(cfg.Save, save.RecordSize(session.GridWidth, session.GridHeight))
	if err != nil {
		log.Fatal(err)
	}

	sess := session.New(store)
	if !sess.Loaded() && cfg.Fill > 0 {
		sess.Grid().Randomize(core.NewRNG(cfg.Seed), cfg.Fill)
	}

	game := app.New(sess, cfg.Scale)

	ebiten.SetWindowTitle("lifepad")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(session.GridWidth*cfg.Scale, session.GridHeight*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
