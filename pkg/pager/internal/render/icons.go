package render

import (
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pager/pkg/pager"
)

// RasterizeSVG draws an SVG document into an RGBA image of size x size.
func RasterizeSVG(source string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(source))
	if err != nil {
		return nil, pager.NewInfrastructureError("parse_svg", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return rgba, nil
}

// Icon is a rasterised SVG uploaded as a texture. The SVG is drawn in white
// so the texture can be tinted with color mod.
type Icon struct {
	Texture *sdl.Texture
	Size    int32
}

func NewIcon(renderer *sdl.Renderer, source string, size int32) (*Icon, error) {
	rgba, err := RasterizeSVG(source, int(size))
	if err != nil {
		return nil, err
	}

	tex, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, size, size)
	if err != nil {
		return nil, pager.NewInfrastructureError("create_texture", err)
	}
	if err := tex.Update(nil, unsafe.Pointer(&rgba.Pix[0]), rgba.Stride); err != nil {
		tex.Destroy()
		return nil, pager.NewInfrastructureError("upload_icon", err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)

	return &Icon{Texture: tex, Size: size}, nil
}

// Draw copies the icon centered on cx, cy tinted with color.
func (i *Icon) Draw(renderer *sdl.Renderer, cx, cy int32, color sdl.Color) {
	i.Texture.SetColorMod(color.R, color.G, color.B)
	i.Texture.SetAlphaMod(color.A)
	renderer.Copy(i.Texture, nil, &sdl.Rect{
		X: cx - i.Size/2,
		Y: cy - i.Size/2,
		W: i.Size,
		H: i.Size,
	})
}

func (i *Icon) Destroy() {
	if i != nil && i.Texture != nil {
		i.Texture.Destroy()
	}
}
