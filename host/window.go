// Package host runs the simulation either in a desktop window or headless
// off a ticker. Both drive the same single-threaded tick loop.
package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"prowl/internal/buildinfo"
)

// RunWindow opens the window and blocks until it closes.
func RunWindow(game ebiten.Game, width, height int) error {
	ebiten.SetWindowTitle("prowl (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(game)
}
