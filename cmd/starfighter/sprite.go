package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-starfighter/internal/asset"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

var (
	flagSpriteWidth  float64
	flagSpriteHeight float64
	flagSpriteCols   int
	flagMirror       bool
	flagFlip         bool
)

var spriteCmd = &cobra.Command{
	Use:   "sprite [name]",
	Short: "Preview a sprite from the asset catalog",
	Long: `Render a sprite to stdout the way the game scales it. Without a name,
list the catalog.

Examples:
  starfighter sprite
  starfighter sprite player --width 50
  starfighter sprite monster --width 100 --mirror`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSprite,
}

func init() {
	spriteCmd.Flags().Float64Var(&flagSpriteWidth, "width", 50, "Scale to this logical width (0 = native)")
	spriteCmd.Flags().Float64Var(&flagSpriteHeight, "height", 0, "Scale to this logical height (0 = native)")
	spriteCmd.Flags().IntVar(&flagSpriteCols, "cols", 40, "Terminal columns for the preview")
	spriteCmd.Flags().BoolVar(&flagMirror, "mirror", false, "Mirror horizontally")
	spriteCmd.Flags().BoolVar(&flagFlip, "flip", false, "Flip vertically")
}

func runSprite(_ *cobra.Command, args []string) {
	lib, err := asset.NewLibrary(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 0 {
		fmt.Println("Sprites:")
		for _, name := range lib.Names() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	img, err := lib.Load(args[0], flagSpriteWidth, flagSpriteHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagMirror {
		img = asset.Mirror(img)
	}
	if flagFlip {
		img = asset.Flip(img)
	}

	fmt.Printf("%s %vx%v\n", img.Name, img.W, img.H)
	fmt.Println(renderSprite(img, flagSpriteCols))
}

// renderSprite draws img on a screen cols wide, keeping the aspect ratio
// with cells twice as tall as they are wide.
func renderSprite(img *core.Image, cols int) string {
	cols = max(1, cols)
	rows := max(1, int(float64(cols)*img.H/img.W/2+0.5))
	screen := core.NewScreen(cols, rows)
	screen.SetView(img.W, img.H)
	screen.Clear()
	screen.Blit(img, 0, 0)
	return screen.String()
}
