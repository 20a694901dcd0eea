package parameter

import "time"

// Terminal layout
const (
	// CellColumns is the number of terminal columns per grid cell, keeps cells roughly square
	CellColumns = 2

	// StatusLines is the number of rows reserved below the play field
	StatusLines = 1
)

// Glyphs
const (
	GlyphHead   = '@'
	GlyphBody   = 'o'
	GlyphTail   = '.'
	GlyphTreat  = '*'
	GlyphBorder = '#'
)

// Debug surface
const (
	// DebugClientBuffer is the number of snapshots queued per websocket client before drops
	DebugClientBuffer = 8

	// DebugWriteTimeout bounds a single websocket write
	DebugWriteTimeout = 2 * time.Second
)
