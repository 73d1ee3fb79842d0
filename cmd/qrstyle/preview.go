package main

import (
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"github.com/Mictilt/qrstyle"
)

// cellScreen is the part of termbox the preview draws on.
type cellScreen interface {
	Size() (int, int)
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
}

type termboxScreen struct{}

func (termboxScreen) Size() (int, int) {
	return termbox.Size()
}

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

// preview shows the module grid of cfg in the terminal until a key is
// pressed. Shapes and colors are not previewed, only dark and light modules.
func preview(cfg qrstyle.Config) error {
	grid, err := cfg.Encoder.Encode(cfg.Content, qrstyle.EncodeOptions{
		ErrorCorrection: cfg.ErrorCorrection,
		Version:         cfg.Version,
	})
	if err != nil {
		return err
	}

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer termbox.Close()

	if err = termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return errors.Wrap(err, "clear terminal")
	}
	drawPreview(termboxScreen{}, grid, cfg.Margin, "press any key to exit")
	if err = termbox.Flush(); err != nil {
		return errors.Wrap(err, "flush terminal")
	}

	for {
		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey, termbox.EventInterrupt:
			return nil
		case termbox.EventError:
			return errors.Wrap(ev.Err, "poll terminal")
		}
	}
}

// drawPreview draws every module as two cells so that modules look square,
// followed by caption centered on the line below the symbol.
func drawPreview(scr cellScreen, grid *qrstyle.ModuleGrid, margin int, caption string) {
	total := qrstyle.TotalGridSize(grid.Size(), margin)

	for row := 0; row < total; row++ {
		for col := 0; col < total; col++ {
			bg := termbox.ColorWhite
			if grid.Dark(row-margin, col-margin) {
				bg = termbox.ColorBlack
			}
			scr.SetCell(2*col, row, ' ', termbox.ColorDefault, bg)
			scr.SetCell(2*col+1, row, ' ', termbox.ColorDefault, bg)
		}
	}

	width, _ := scr.Size()
	caption = runewidth.Truncate(caption, width, "...")

	x := (2*total - runewidth.StringWidth(caption)) / 2
	if x < 0 {
		x = 0
	}
	for _, r := range caption {
		scr.SetCell(x, total, r, termbox.ColorDefault, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}
}
