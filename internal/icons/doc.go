// Package icons loads the weather icon sprites and decides which one is shown.
//
// Icons are keyed by met.no symbol code, taken from the asset file name.
// Select is the only decision logic: exactly the icon whose id equals the
// current symbol code is Opaque, all others are Transparent, and an unknown
// symbol code simply hides every icon.
package icons
