// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-orbit/pkg/entity"
)

// AssetManager builds and caches the procedural sprites used by the
// renderer. No image files ship with the simulator; every drawable is
// generated at startup.
type AssetManager struct {
	// Body discs keyed by packed 0xRRGGBB color
	bodySprites map[uint32]common.Drawable

	// Player marker, a small upward-pointing wedge
	playerSprite common.Drawable

	// Single pixel dot used for trajectory paths
	trajectoryDot common.Drawable

	backgroundTexture common.Drawable
}

// NewAssetManager creates an empty asset manager. Call LoadAssets
// before requesting sprites.
func NewAssetManager() *AssetManager {
	return &AssetManager{
		bodySprites: make(map[uint32]common.Drawable),
	}
}

// LoadAssets generates the player marker, trajectory dot, and starfield
// background. Body discs are generated lazily per color.
func (am *AssetManager) LoadAssets() error {
	am.playerSprite = am.createPlayerSprite()
	am.trajectoryDot = am.createDotSprite()
	am.backgroundTexture = am.createStarfield(64)
	return nil
}

// GetBodySprite returns the disc sprite for a body, generating and
// caching it on first use.
func (am *AssetManager) GetBodySprite(body *entity.Body) common.Drawable {
	c := body.Color & 0xFFFFFF
	if sprite, exists := am.bodySprites[c]; exists {
		return sprite
	}
	sprite := am.createDiscSprite(32, colorFromPacked(c))
	am.bodySprites[c] = sprite
	return sprite
}

// GetPlayerSprite returns the player marker sprite.
func (am *AssetManager) GetPlayerSprite() common.Drawable {
	return am.playerSprite
}

// GetTrajectoryDot returns the dot sprite used for trajectory paths.
func (am *AssetManager) GetTrajectoryDot() common.Drawable {
	return am.trajectoryDot
}

// GetBackgroundTexture returns the starfield background.
func (am *AssetManager) GetBackgroundTexture() common.Drawable {
	return am.backgroundTexture
}

// createDiscSprite renders a filled circle of the given diameter and
// color into a texture.
func (am *AssetManager) createDiscSprite(diameter int, fill color.RGBA) common.Drawable {
	img := am.createBaseImage(diameter, diameter)
	r := float64(diameter) / 2
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, fill)
			}
		}
	}
	return am.convertToEngoTexture(img)
}

// createPlayerSprite renders the wedge marker. Row 0 is the nose so
// the sprite points up at rotation zero.
func (am *AssetManager) createPlayerSprite() common.Drawable {
	const size = 16
	img := am.createBaseImage(size, size)
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < size; y++ {
		half := y / 2
		for x := size/2 - half; x <= size/2+half && x < size; x++ {
			if x >= 0 {
				img.Set(x, y, white)
			}
		}
	}
	return am.convertToEngoTexture(img)
}

// createDotSprite renders a 2x2 dot for trajectory points.
func (am *AssetManager) createDotSprite() common.Drawable {
	img := am.createBaseImage(2, 2)
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, white)
		}
	}
	return am.convertToEngoTexture(img)
}

// createStarfield renders a sparse deterministic star pattern used as
// the scene background tile.
func (am *AssetManager) createStarfield(size int) common.Drawable {
	img := am.createBaseImage(size, size)
	white := color.RGBA{255, 255, 255, 255}
	for i := 0; i < size; i += 8 {
		if (i/8)%3 == 0 {
			img.Set(i, (i*7)%size, white)
		}
	}
	return am.convertToEngoTexture(img)
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func (am *AssetManager) createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.RGBA) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgbaImg.Set(x, y, img.At(x, y))
		}
	}

	texture := common.NewImageObject(nrgbaImg)
	return common.NewTextureSingle(texture)
}

// colorFromPacked converts a packed 0xRRGGBB value to an opaque RGBA color.
func colorFromPacked(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 255,
	}
}
