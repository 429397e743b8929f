// Package ui is the terminal front end of weatherpane, built on Bubble Tea.
//
// The Model owns all display state. A tea.Tick fires every frame interval
// and runs one state.Loop iteration, which drains the weather bridge and
// updates the temperature label and icon opacities. View then draws the
// temperature in a block font above the visible icon, with the condition
// caption and a footer underneath.
//
// Keys:
//
//	f        toggle fullscreen (alternate screen)
//	T        cycle colour theme
//	l        toggle the log overlay
//	h, ?     toggle help
//	q        quit
//
// Theme and fullscreen choices are saved through package prefs.
package ui
