package flood

import "image/color"

const (
	displayLevels = 16
	// displayWetMin is the depth in meters below which a cell renders as dry
	// terrain.
	displayWetMin = 0.0005
	// displayDepthFull is the depth in meters at which a cell renders as the
	// deepest water shade.
	displayDepthFull = 0.25
)

var floodPalette = buildFloodPalette()

// Palette exposes the color table matched to the display buffer: terrain
// shades in the low half, water blues in the high half.
func (s *Simulator) Palette() []color.RGBA {
	return floodPalette
}

// refreshDisplay repacks elevation shade or water band into the display byte
// for every cell.
func (s *Simulator) refreshDisplay() {
	elev := s.field.Values()
	depth := s.cur.Values()
	for i := range s.display {
		if depth[i] >= displayWetMin {
			band := int(depth[i] / displayDepthFull * float64(displayLevels-1))
			if band > displayLevels-1 {
				band = displayLevels - 1
			}
			s.display[i] = uint8(displayLevels + band)
			continue
		}
		shade := 0
		if s.elevSpan > 0 {
			shade = int((elev[i] - s.elevMin) / s.elevSpan * float64(displayLevels-1))
		}
		if shade > displayLevels-1 {
			shade = displayLevels - 1
		}
		s.display[i] = uint8(shade)
	}
}

func buildFloodPalette() []color.RGBA {
	palette := make([]color.RGBA, 2*displayLevels)
	for i := 0; i < displayLevels; i++ {
		t := float64(i) / float64(displayLevels-1)
		// Dry land runs dark soil to pale ridge.
		palette[i] = color.RGBA{
			R: uint8(60 + t*140),
			G: uint8(48 + t*132),
			B: uint8(36 + t*114),
			A: 255,
		}
		// Water runs shallow cyan to deep blue.
		palette[displayLevels+i] = color.RGBA{
			R: uint8(120 - t*90),
			G: uint8(190 - t*120),
			B: uint8(235 - t*55),
			A: 255,
		}
	}
	return palette
}
