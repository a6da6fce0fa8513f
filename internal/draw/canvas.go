package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Cell contents, indexed by (top bit | bottom bit << 1).
var cellRunes = [4]rune{BlockEmpty, BlockUpperHalf, BlockLowerHalf, BlockFull}

// cellUnknown marks a cell whose on-screen content is not known, so the
// next Render rewrites it.
const cellUnknown = 0xff

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Shapes are given in logical coordinates and scaled to the
// terminal. Render only emits the cells that changed since the last frame.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set
	shown          []byte // Cell content currently on screen, per cell

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offset of the render area when it is centred in a
	// larger terminal.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping
// logical size. A size change forgets what is on screen.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.shown = make([]byte, termHeight*termWidth)
		c.ForceRedraw()
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

func (c *Canvas) OffsetCol() int { return c.offsetCol }
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render rewrite every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	for i := range c.shown {
		c.shown[i] = cellUnknown
	}
}

// MarkTextDirty records that text was written over n cells starting at the
// 1-based (col, row), so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	row--
	col--
	if row < 0 || row >= c.termHeight {
		return
	}
	for x := max(col, 0); x < min(col+n, c.termWidth); x++ {
		c.shown[row*c.termWidth+x] = cellUnknown
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Plot sets the pixel under a logical point.
func (c *Canvas) Plot(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon, optionally filled.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 2 {
		return
	}
	if filled && len(points) >= 3 {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawCircle draws a circle outline as a polygon fine enough for its
// size on screen.
func (c *Canvas) DrawCircle(cx, cy, r float64) {
	pixels := r * max(c.scaleX, c.scaleY)
	if pixels < 1 {
		c.Plot(cx, cy)
		return
	}
	segments := int(math.Ceil(pixels * 2))
	segments = min(max(segments, 8), 64)

	points := c.BorrowPoints(segments)
	for i := range points {
		a := float64(i) * 2 * math.Pi / float64(segments)
		points[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	c.DrawPolygon(points, false)
}

// FillCircle draws a solid disc. Discs smaller than a pixel still set
// the pixel under their centre.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	px, py := cx*c.scaleX, cy*c.scaleY
	rx, ry := r*c.scaleX, r*c.scaleY
	if rx < 1 && ry < 1 {
		c.Plot(cx, cy)
		return
	}
	for y := int(math.Floor(py - ry)); y <= int(math.Ceil(py+ry)); y++ {
		dy := (float64(y) - py) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		for x := int(math.Round(px - half)); x <= int(math.Round(px+half)); x++ {
			c.setPixel(x, y)
		}
	}
}

// fillPolygon fills a polygon using scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	n := len(scaled)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes the cells that differ from what is on screen using
// half-block characters. Adjacent changed cells share one cursor move.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.termHeight; row++ {
		top := row * 2 * c.termWidth
		bottom := top + c.termWidth
		cursorCol := -1
		for col := 0; col < c.termWidth; col++ {
			var cell byte
			if c.pixels[top+col] {
				cell |= 1
			}
			if c.pixels[bottom+col] {
				cell |= 2
			}

			i := row*c.termWidth + col
			if c.shown[i] == cell {
				continue
			}
			c.shown[i] = cell

			// The centering offset is applied by the writer.
			if cursorCol != col {
				cw.MoveCursor(col+1, row+1)
			}
			cw.WriteRune(cellRunes[cell])
			cursorCol = col + 1
		}
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis. Coordinates are
// absolute terminal positions.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	at := func(col, row int, s string) {
		buf.WriteString("\033[")
		buf.WriteString(strconv.Itoa(row))
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(col))
		buf.WriteByte('H')
		buf.WriteString(s)
	}

	if hasV {
		if hasH {
			at(left, top, "┌"+line+"┐")
			at(left, bottom, "└"+line+"┘")
		} else {
			at(c.offsetCol+1, top, line)
			at(c.offsetCol+1, bottom, line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			at(left, row, "│")
			at(right, row, "│")
		}
	}
	io.WriteString(w, buf.String())
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Scale returns the horizontal and vertical pixels per logical unit.
func (c *Canvas) Scale() (float64, float64) { return c.scaleX, c.scaleY }

// LogicalToTerminal converts logical coordinates to a 1-based canvas cell.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
