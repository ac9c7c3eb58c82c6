package render

import (
	"testing"

	"github.com/BrandonKowalski/pager/pkg/pager"
	"github.com/BrandonKowalski/pager/pkg/pager/constants"
)

func TestRasterizeSVG(t *testing.T) {
	for name, src := range map[string]string{
		"chevron left":  constants.ChevronLeftSVG,
		"chevron right": constants.ChevronRightSVG,
		"dot":           constants.DotSVG,
	} {
		t.Run(name, func(t *testing.T) {
			img, err := RasterizeSVG(src, 24)
			if err != nil {
				t.Fatalf("RasterizeSVG() error = %v", err)
			}
			if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 24 {
				t.Fatalf("bounds = %v, want 24x24", b)
			}

			var painted int
			for i := 3; i < len(img.Pix); i += 4 {
				if img.Pix[i] > 0 {
					painted++
				}
			}
			if painted == 0 {
				t.Fatal("no pixels painted")
			}
		})
	}
}

func TestRasterizeDotIsCentered(t *testing.T) {
	img, err := RasterizeSVG(constants.DotSVG, 24)
	if err != nil {
		t.Fatalf("RasterizeSVG() error = %v", err)
	}

	if _, _, _, a := img.At(12, 12).RGBA(); a == 0 {
		t.Fatal("dot center is transparent")
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatal("dot corner is painted")
	}
}

func TestRasterizeInvalidSVG(t *testing.T) {
	_, err := RasterizeSVG("<svg", 16)
	if !pager.IsInfrastructureError(err) {
		t.Fatalf("error = %v, want an infrastructure error", err)
	}
}

func TestHexToColor(t *testing.T) {
	c := HexToColor(0x12AB34)
	if c.R != 0x12 || c.G != 0xAB || c.B != 0x34 || c.A != 255 {
		t.Fatalf("HexToColor() = %+v", c)
	}
}
