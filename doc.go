// Package brandkit generates the visual packaging of a browser extension
// from a single master logo.
//
// # Overview
//
// A Generator turns one logo into:
//   - PNG icons at every configured size, plus opaque "-square" variants for
//     sizes up to 48 pixels
//   - an SVG icon embedding the logo over a diagonal gradient
//   - one store banner per distribution platform
//   - a transparent header banner for the popup
//   - popup and options screenshots drawn from declarative mockups
//
// When the logo is missing or cannot be decoded, a placeholder logo is
// synthesized and generation continues.
//
// # Quick Start
//
//	g, err := brandkit.New(brandkit.WithLogoPath("art/logo.png"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report := g.GenerateAll()
//	if err := report.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Configuration problems are returned by New as *ConfigError. Rendering and
// write failures never abort a run: each Artifact carries its own error and
// the remaining artifacts are still produced.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Boxes are half-open: [x0, x1)×[y0, y1)
//   - Strokes are drawn inside the edge of their shape
//
// # Logging
//
// brandkit logs through log/slog and is silent by default. See SetLogger.
package brandkit

// Version is the current version of the library.
const Version = "0.1.0"
