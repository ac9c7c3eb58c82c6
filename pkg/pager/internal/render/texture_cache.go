package render

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pager/pkg/pager"
)

const defaultMaxCacheSize = 5

// LayerCache keeps one render target per page so a page is only redrawn when
// it asks to be. At most maxSize targets are alive; the least recently used
// one is destroyed first.
type LayerCache struct {
	textures map[any]*sdl.Texture
	order    []any // tracks use order for LRU eviction
	maxSize  int
}

func NewLayerCache() *LayerCache {
	return NewLayerCacheWithSize(defaultMaxCacheSize)
}

func NewLayerCacheWithSize(maxSize int) *LayerCache {
	if maxSize < 2 {
		// A transition composites two pages at once.
		maxSize = 2
	}
	return &LayerCache{
		textures: make(map[any]*sdl.Texture),
		order:    make([]any, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Target returns the cached texture for key when it still matches w x h.
// Otherwise it creates a new render target, and fresh is true so the caller
// knows it has to draw the page.
func (c *LayerCache) Target(renderer *sdl.Renderer, key any, w, h int32) (tex *sdl.Texture, fresh bool, err error) {
	if tex, ok := c.textures[key]; ok {
		if _, _, tw, th, qerr := tex.Query(); qerr == nil && tw == w && th == h {
			c.moveToEnd(key)
			return tex, false, nil
		}
		c.Invalidate(key)
	}

	tex, err = renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_TARGET, w, h)
	if err != nil {
		return nil, false, pager.NewInfrastructureError("create_texture", err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	c.set(key, tex)
	return tex, true, nil
}

func (c *LayerCache) set(key any, texture *sdl.Texture) {
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Invalidate destroys the texture cached for key.
func (c *LayerCache) Invalidate(key any) {
	tex, ok := c.textures[key]
	if !ok {
		return
	}
	tex.Destroy()
	delete(c.textures, key)
	c.removeKey(key)
}

func (c *LayerCache) moveToEnd(key any) {
	c.removeKey(key)
	c.order = append(c.order, key)
}

func (c *LayerCache) removeKey(key any) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func (c *LayerCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *LayerCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[any]*sdl.Texture)
	c.order = c.order[:0]
}
