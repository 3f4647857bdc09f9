package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkGrazerExtinct BookmarkType = "grazer_extinct"
	BookmarkGrazerCrash   BookmarkType = "grazer_crash"
	BookmarkGrazerBoom    BookmarkType = "grazer_boom"
	BookmarkGridlock      BookmarkType = "gridlock"
)

// Detection thresholds.
const (
	crashFraction    = 0.7 // population below this share of the recent peak
	crashMinPeak     = 10
	boomFactor       = 2.0 // births above this multiple of the rolling mean
	boomMinBirths    = 5
	gridlockRate     = 0.5 // rejected share of all moves
	gridlockMinMoves = 20
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable moments from successive windows.
type BookmarkDetector struct {
	history     []WindowStats
	historyIdx  int
	historyFull bool

	// Latched conditions fire once until they clear.
	crashed    bool
	gridlocked bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 2 {
		historySize = 2
	}
	return &BookmarkDetector{history: make([]WindowStats, historySize)}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark
	hist := bd.getHistory()

	if len(hist) > 0 {
		prev := bd.history[(bd.historyIdx+len(bd.history)-1)%len(bd.history)]
		if prev.Grazers > 0 && stats.Grazers == 0 {
			bookmarks = append(bookmarks, Bookmark{
				Type:        BookmarkGrazerExtinct,
				Tick:        stats.WindowEndTick,
				Description: fmt.Sprintf("last %d grazers died", prev.Grazers),
			})
		}

		if b := bd.checkCrash(stats, hist); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := checkBoom(stats, hist); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	if b := bd.checkGridlock(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % len(bd.history)
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkCrash(stats WindowStats, hist []WindowStats) *Bookmark {
	peak := 0
	for _, h := range hist {
		if h.Grazers > peak {
			peak = h.Grazers
		}
	}
	if peak < crashMinPeak {
		return nil
	}

	below := float64(stats.Grazers) < crashFraction*float64(peak)
	if !below {
		bd.crashed = false
		return nil
	}
	if bd.crashed {
		return nil
	}
	bd.crashed = true
	return &Bookmark{
		Type:        BookmarkGrazerCrash,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("grazers fell from %d to %d", peak, stats.Grazers),
	}
}

func checkBoom(stats WindowStats, hist []WindowStats) *Bookmark {
	var sum float64
	for _, h := range hist {
		sum += float64(h.GrazerBirths)
	}
	mean := sum / float64(len(hist))
	if stats.GrazerBirths < boomMinBirths || float64(stats.GrazerBirths) <= boomFactor*mean {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkGrazerBoom,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d grazer births against a mean of %.1f", stats.GrazerBirths, mean),
	}
}

func (bd *BookmarkDetector) checkGridlock(stats WindowStats) *Bookmark {
	moves := stats.MovesAccepted + stats.MovesRejected
	if moves < gridlockMinMoves || stats.RejectRate <= gridlockRate {
		bd.gridlocked = false
		return nil
	}
	if bd.gridlocked {
		return nil
	}
	bd.gridlocked = true
	return &Bookmark{
		Type:        BookmarkGridlock,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%.0f%% of %d moves rejected", stats.RejectRate*100, moves),
	}
}
