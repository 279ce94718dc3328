// animview previews a character's textures through the same animator the game
// uses. Hold Left or Right to walk, release to idle, F toggles the fall pose.
package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/milk9111/digger/assets"
	"github.com/milk9111/digger/ecs/component"
	"github.com/milk9111/digger/ecs/entity"
	"github.com/milk9111/digger/ecs/system"
)

const viewSize = 512

type viewer struct {
	prefix      string
	anim        component.Animation
	fall        bool
	tick        int
	ticksPerFrm int
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.fall = !v.fall
	}

	changeX := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		changeX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		changeX++
	}

	v.tick++
	if changeX != 0 && v.tick < v.ticksPerFrm {
		return nil
	}
	v.tick = 0
	system.UpdateAnimation(&v.anim, changeX)
	if v.fall {
		v.anim.Pose = component.PoseFall
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if img := v.anim.Texture(); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(viewSize-img.Bounds().Dx())/2, float64(viewSize-img.Bounds().Dy())/2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  facing=%s frame=%d pose=%d", v.prefix, v.anim.Facing, v.anim.Frame, v.anim.Pose))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	var (
		assetsDir string
		frames    int
		fps       int
	)

	cmd := &cobra.Command{
		Use:   "animview [prefix]",
		Short: "Preview a character's idle, walk and fall textures",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := "digger"
			if len(args) == 1 {
				prefix = args[0]
			}
			assets.Dir = assetsDir

			textures, err := entity.LoadTextureSet(prefix, frames)
			if err != nil {
				return err
			}

			ticks := 1
			if fps > 0 {
				ticks = max(60/fps, 1)
			}
			v := &viewer{prefix: prefix, anim: component.Animation{Textures: textures}, ticksPerFrm: ticks}

			ebiten.SetWindowSize(viewSize, viewSize)
			ebiten.SetWindowTitle("animview - " + prefix)
			return ebiten.RunGame(v)
		},
	}
	cmd.Flags().StringVar(&assetsDir, "assets", "assets", "on-disk asset directory")
	cmd.Flags().IntVar(&frames, "frames", 8, "number of walk frames")
	cmd.Flags().IntVar(&fps, "fps", 12, "walk cycle frames per second")

	if err := cmd.Execute(); err != nil {
		log.Fatal("animview", "err", err)
	}
}
