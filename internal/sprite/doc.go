// Package sprite draws weather icons into a fixed block of terminal cells.
//
// Halfblocks are rendered in pure Go, two pixel rows per cell, with colours
// downsampled to the terminal's termenv profile. Kitty, iTerm2 and Sixel
// output is produced by go-termimg. A hidden icon is drawn as blank cells
// of the same size, which is how the widget expresses zero opacity.
package sprite
