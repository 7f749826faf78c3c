package devtools

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/fogleman/gg"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/state"
)

// DefaultScreenshotFilename is used when no PNG path is configured
const DefaultScreenshotFilename = "screenshot.png"

// Image palette, matching the terminal colors
var (
	pngOpen     = color.RGBA{255, 255, 255, 255}
	pngBlocked  = color.RGBA{0, 0, 0, 255}
	pngRelaxed  = color.RGBA{220, 50, 50, 255}
	pngPath     = color.RGBA{40, 180, 70, 255}
	pngEndpoint = color.RGBA{40, 80, 220, 255}
	pngGridLine = color.RGBA{200, 200, 200, 255}
)

func markRGBA(m state.Mark) color.RGBA {
	switch m {
	case state.MarkBlocked:
		return pngBlocked
	case state.MarkRelaxed:
		return pngRelaxed
	case state.MarkPath:
		return pngPath
	case state.MarkEndpoint:
		return pngEndpoint
	default:
		return pngOpen
	}
}

// RenderImage draws the session into a new gg context, scale pixels per cell
func RenderImage(s *state.Session, scale int) (*gg.Context, error) {
	if s == nil || s.Grid == nil {
		return nil, ErrNoGrid
	}
	if scale < 1 {
		return nil, fmt.Errorf("scale must be positive, got %d", scale)
	}

	width := s.Grid.Cols() * scale
	height := s.Grid.Rows() * scale
	dc := gg.NewContext(width, height)
	dc.SetColor(pngOpen)
	dc.Clear()

	center := func(c world.Coord) (float64, float64) {
		return float64(c.Col*scale) + float64(scale)/2, float64(c.Row*scale) + float64(scale)/2
	}

	s.ForEachMark(func(c world.Coord, m state.Mark) {
		// Endpoints are drawn as circles over an open cell
		if m == state.MarkEndpoint {
			return
		}
		dc.SetColor(markRGBA(m))
		dc.DrawRectangle(float64(c.Col*scale), float64(c.Row*scale), float64(scale), float64(scale))
		dc.Fill()
	})

	if scale >= 4 {
		dc.SetColor(pngGridLine)
		dc.SetLineWidth(1)
		for col := 0; col <= s.Grid.Cols(); col++ {
			dc.DrawLine(float64(col*scale), 0, float64(col*scale), float64(height))
		}
		for row := 0; row <= s.Grid.Rows(); row++ {
			dc.DrawLine(0, float64(row*scale), float64(width), float64(row*scale))
		}
		dc.Stroke()
	}

	if len(s.Path) > 1 {
		dc.SetColor(pngPath)
		dc.SetLineWidth(float64(scale) / 3)
		dc.MoveTo(center(s.Path[0]))
		for _, c := range s.Path[1:] {
			dc.LineTo(center(c))
		}
		dc.Stroke()
	}

	for _, c := range []world.Coord{s.Source, s.Destination} {
		if !s.Grid.IsValid(c) {
			continue
		}
		x, y := center(c)
		dc.SetColor(pngEndpoint)
		dc.DrawCircle(x, y, float64(scale)/2)
		dc.Fill()
	}

	return dc, nil
}

// SaveScreenshotPNG renders the session and writes it to path, returning the absolute path
func SaveScreenshotPNG(s *state.Session, path string, scale int) (string, error) {
	if path == "" {
		path = DefaultScreenshotFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	dc, err := RenderImage(s, scale)
	if err != nil {
		return "", err
	}
	if err := dc.SavePNG(absPath); err != nil {
		return "", fmt.Errorf("save screenshot: %w", err)
	}
	return absPath, nil
}
