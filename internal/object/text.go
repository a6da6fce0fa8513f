package object

// Banner is the transient centre-screen text ("LEVEL 2", "GAME OVER")
// that fades out over a few seconds.
type Banner struct {
	Value string
	Alpha float64 // 1 = opaque, 0 = gone
}

// Show replaces the banner text and makes it fully opaque.
func (b *Banner) Show(text string) {
	b.Value = text
	b.Alpha = 1
}

// Fade lowers the alpha by step. Returns true once the banner is gone.
func (b *Banner) Fade(step float64) bool {
	if b.Alpha > 0 {
		b.Alpha -= step
		if b.Alpha < 0 {
			b.Alpha = 0
		}
	}
	return b.Alpha <= 0
}

// Visible reports whether there is anything to draw.
func (b Banner) Visible() bool {
	return b.Value != "" && b.Alpha > 0
}
