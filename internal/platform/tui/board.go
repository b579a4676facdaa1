package tui

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/KIM-17/matching-card-game/internal/core"
	"github.com/KIM-17/matching-card-game/internal/deck"
	"github.com/KIM-17/matching-card-game/internal/game"
)

// Card cell geometry in screen columns/rows.
const (
	cardW   = 6
	cardH   = 3
	cardGap = 1
	gridTop = 4
)

// boardLayout is where the grid sits for a given snapshot and screen.
type boardLayout struct {
	cols, rows int
	left       int
	width      int
	height     int
}

func layoutFor(snap game.Snapshot, screenW int) boardLayout {
	cols := snap.Columns
	if cols <= 0 {
		cols = 1
	}
	rows := (snap.BoardSize + cols - 1) / cols
	width := cols*(cardW+cardGap) - cardGap
	return boardLayout{
		cols:   cols,
		rows:   rows,
		left:   (screenW - width) / 2,
		width:  width,
		height: rows * cardH,
	}
}

// cardRect returns the box of the card at pos.
func (l boardLayout) cardRect(pos int) core.Rect {
	col := pos % l.cols
	row := pos / l.cols
	return core.NewRect(l.left+col*(cardW+cardGap), gridTop+row*cardH, cardW, cardH)
}

// minHeight is the number of rows needed for header, grid, banner and footer.
func (l boardLayout) minHeight() int {
	return gridTop + l.height + 5
}

// drawBoard renders a full game frame for snap with the cursor on a position.
func drawBoard(s *core.Screen, snap game.Snapshot, tiers []deck.Tier, cursor int) {
	s.Clear()

	l := layoutFor(snap, s.Width())
	if s.Width() < l.width+2 || s.Height() < l.minHeight() {
		s.DrawTextCentered(s.Height()/2, "Terminal too small", core.ColorYellow)
		s.DrawTextCentered(s.Height()/2+1, fmt.Sprintf("need %dx%d", l.width+2, l.minHeight()), core.ColorGray)
		return
	}

	s.DrawTextCentered(0, "M E M O R Y", core.ColorMagenta)
	drawTierStrip(s, 1, tiers, snap.Difficulty)
	drawScoreLine(s, 2, snap)

	for _, c := range snap.Cards {
		drawCard(s, l.cardRect(c.Position), c, c.Position == cursor)
	}

	y := gridTop + l.height + 1
	switch {
	case snap.IsComplete:
		s.DrawTextCentered(y, "🎉 Congratulations! 🎉", core.ColorMagenta)
		s.DrawTextCentered(y+1, fmt.Sprintf("Cleared in %d moves!", snap.Moves), core.ColorPink)
		if snap.IsNewBest {
			s.DrawTextCentered(y+2, "✨ New best record! ✨", core.ColorYellow)
		}
	case snap.Phase == game.PhaseComparing:
		s.DrawTextCentered(y, "Not a match", core.ColorGray)
	}

	s.DrawTextCentered(s.Height()-1, footerText(snap, len(tiers)), core.ColorGray)
}

func drawCard(s *core.Screen, r core.Rect, c game.CardView, focused bool) {
	color := core.ColorPink
	switch {
	case focused:
		color = core.ColorYellow
	case c.Matched:
		color = core.ColorGreen
	case c.FaceUp:
		color = core.ColorMagenta
	}
	s.DrawBox(r, color)

	// Inner area is cardW-2 columns wide
	text, textColor := "??", core.ColorPink
	if c.FaceUp {
		text, textColor = c.Value, core.ColorBrightWhite
	}
	inner := cardW - 2
	x := r.X + 1 + (inner-runewidth.StringWidth(text))/2
	s.DrawTextColor(x, r.Y+1, text, textColor)
}

// drawTierStrip draws "1:3x4  2:4x4  3:5x4" centered, current tier highlighted.
func drawTierStrip(s *core.Screen, y int, tiers []deck.Tier, current deck.Difficulty) {
	labels := make([]string, len(tiers))
	total := 0
	for i, t := range tiers {
		labels[i] = fmt.Sprintf("%d:%s", i+1, t.Difficulty)
		total += runewidth.StringWidth(labels[i])
	}
	total += 2 * (len(labels) - 1)

	x := (s.Width() - total) / 2
	for i, label := range labels {
		color := core.ColorGray
		if tiers[i].Difficulty == current {
			color = core.ColorYellow
		}
		x += s.DrawTextColor(x, y, label, color) + 2
	}
}

func drawScoreLine(s *core.Screen, y int, snap game.Snapshot) {
	best := "Challenge it!"
	if snap.HasBest {
		best = fmt.Sprintf("%d moves", snap.BestScore)
	}
	s.DrawTextCentered(y, fmt.Sprintf("Moves: %d   Best: %s", snap.Moves, best), core.ColorPink)
}

// restartLabel names what r does: nothing matched yet deals a first board,
// otherwise it throws the current round away.
func restartLabel(snap game.Snapshot) string {
	switch {
	case snap.IsComplete:
		return "play again"
	case snap.InProgress:
		return "restart"
	default:
		return "new game"
	}
}

// Only digits 1-9 pick a tier, so larger tables still show 1-9.
func footerText(snap game.Snapshot, tierCount int) string {
	return fmt.Sprintf("arrows move  enter flip  r %s  1-%d size  tab scores  esc menu  q quit",
		restartLabel(snap), min(tierCount, 9))
}
