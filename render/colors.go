package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(90, 90, 110)   // Muted slate
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White

	RgbHead  = tcell.NewRGBColor(255, 165, 0) // Orange
	RgbBody  = tcell.NewRGBColor(0, 200, 0)   // Normal green
	RgbTail  = tcell.NewRGBColor(0, 130, 0)   // Dark green
	RgbTreat = tcell.NewRGBColor(255, 255, 0) // Bright yellow, the glowing treat
)
