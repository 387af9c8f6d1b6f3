package renderer

import "sync/atomic"

// pixelCursor hands out every pixel of an nx by ny raster exactly once,
// row by row, to any number of workers
type pixelCursor struct {
	nx, ny    int
	next      atomic.Int64
	completed atomic.Int64
}

func newPixelCursor(nx, ny int) *pixelCursor {
	return &pixelCursor{nx: nx, ny: ny}
}

// claim returns the next unclaimed pixel, or ok == false once the raster is exhausted
func (c *pixelCursor) claim() (col, row int, ok bool) {
	i := c.next.Add(1) - 1
	if i >= c.total() {
		return 0, 0, false
	}
	return int(i % int64(c.nx)), int(i / int64(c.nx)), true
}

// done marks one claimed pixel as finished and returns the number finished so far
func (c *pixelCursor) done() int64 {
	return c.completed.Add(1)
}

func (c *pixelCursor) total() int64 {
	return int64(c.nx) * int64(c.ny)
}
