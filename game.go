package main

import (
	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/digger/common"
	"github.com/milk9111/digger/session"
)

// Game adapts a session to ebiten.Game and draws the pause menu over it.
type Game struct {
	session *session.Session
	pauseUI *ebitenui.UI
	quit    bool
}

func NewGame(s *session.Session) *Game {
	g := &Game{session: s}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if err := g.session.Update(); err != nil {
		return err
	}
	if g.session.Paused() {
		g.pauseUI.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(screen)
	if g.session.Paused() {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) resume() {
	g.session.SetPaused(false)
}

func (g *Game) restart() {
	if err := g.session.Reset(); err != nil {
		log.Error("restart failed", "err", err)
		g.quit = true
	}
}
