package chip8

const (
	// The original implementation of the Chip-8 language used a 64x32-pixel
	// monochrome display.
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Display is a row-major framebuffer, pixel (x, y) lives at x + 64*y.
// Coordinates wrap around both edges.
type Display struct {
	pixels [ScreenWidth * ScreenHeight]bool
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	for i := range d.pixels {
		d.pixels[i] = false
	}
}

// Pixel reports whether the pixel at (x, y) is lit, after wrapping.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[index(x, y)]
}

// Pixels returns the framebuffer. Callers must not modify it.
func (d *Display) Pixels() []bool {
	return d.pixels[:]
}

// Blit XORs an 8 pixel wide sprite onto the screen at (x, y), one byte per
// row, most significant bit leftmost. Each pixel wraps independently, so a
// sprite near an edge continues on the opposite side. It reports whether
// any set sprite bit hit an already lit pixel.
func (d *Display) Blit(x, y byte, rows []byte) (collided bool) {
	for row, bits := range rows {
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			i := index(int(x)+col, int(y)+row)
			if d.pixels[i] {
				collided = true
			}
			d.pixels[i] = !d.pixels[i]
		}
	}
	return collided
}

func index(x, y int) int {
	x %= ScreenWidth
	if x < 0 {
		x += ScreenWidth
	}
	y %= ScreenHeight
	if y < 0 {
		y += ScreenHeight
	}
	return x + ScreenWidth*y
}
