// Package render draws the two Paymee charts onto gonum/plot canvases.
//
//   - [Slide]: 16:9 partnership slide with a text card and an icon flow
//   - [Benchmark]: horizontal grouped bar chart of competitor fee rates
//
// Both renderers work in inches: the slide canvas spans 16×9 data units and
// every unit is one inch times [Options.Scale]. Raster formats honour
// [Options.DPI]; vector formats ignore it.
//
// # Fonts
//
// Text uses Liberation Sans from gonum's embedded font cache. [LoadFont]
// registers a TrueType/OpenType file instead and falls back to Liberation
// Sans, with a warning, when the file cannot be read or parsed.
package render
