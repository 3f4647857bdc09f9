package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/pond/config"
)

func TestMain(m *testing.M) {
	config.MustInit("")
	os.Exit(m.Run())
}

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_GrazerCrash(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Grazers: 40})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, Grazers: 20})
	if !hasBookmark(bookmarks, BookmarkGrazerCrash) {
		t.Fatal("expected grazer_crash bookmark")
	}

	// Latched until the population recovers.
	bookmarks = bd.Check(WindowStats{WindowEndTick: 3600, Grazers: 18})
	if hasBookmark(bookmarks, BookmarkGrazerCrash) {
		t.Error("grazer_crash fired twice for one crash")
	}
}

func TestBookmarkDetector_SmallPopulationNoCrash(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bd.Check(WindowStats{Grazers: 6})
	if bookmarks := bd.Check(WindowStats{Grazers: 2}); hasBookmark(bookmarks, BookmarkGrazerCrash) {
		t.Error("crash reported below the minimum peak")
	}
}

func TestBookmarkDetector_Extinction(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bd.Check(WindowStats{Grazers: 3})

	bookmarks := bd.Check(WindowStats{WindowEndTick: 600, Grazers: 0})
	if !hasBookmark(bookmarks, BookmarkGrazerExtinct) {
		t.Fatal("expected grazer_extinct bookmark")
	}

	bookmarks = bd.Check(WindowStats{WindowEndTick: 1200, Grazers: 0})
	if hasBookmark(bookmarks, BookmarkGrazerExtinct) {
		t.Error("extinction reported again while already extinct")
	}
}

func TestBookmarkDetector_Boom(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 4; i++ {
		bd.Check(WindowStats{Grazers: 20, GrazerBirths: 2})
	}

	bookmarks := bd.Check(WindowStats{Grazers: 30, GrazerBirths: 10})
	if !hasBookmark(bookmarks, BookmarkGrazerBoom) {
		t.Error("expected grazer_boom bookmark")
	}
}

func TestBookmarkDetector_Gridlock(t *testing.T) {
	bd := NewBookmarkDetector(10)

	jammed := WindowStats{MovesAccepted: 10, MovesRejected: 30, RejectRate: 0.75}
	if !hasBookmark(bd.Check(jammed), BookmarkGridlock) {
		t.Fatal("expected gridlock bookmark")
	}
	if hasBookmark(bd.Check(jammed), BookmarkGridlock) {
		t.Error("gridlock fired twice without clearing")
	}

	bd.Check(WindowStats{MovesAccepted: 40, MovesRejected: 0})
	if !hasBookmark(bd.Check(jammed), BookmarkGridlock) {
		t.Error("gridlock should fire again after clearing")
	}
}

func TestOutputManager(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	if err := om.WriteConfig(config.Cfg()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	for i := 1; i <= 2; i++ {
		if err := om.WriteTelemetry(WindowStats{WindowEndTick: int32(i * 600), Grazers: i}); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
		if err := om.WritePerf(PerfStats{}, int32(i*600)); err != nil {
			t.Fatalf("WritePerf: %v", err)
		}
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkGridlock, Tick: 600, Description: "jammed"}); err != nil {
		t.Fatalf("WriteBookmark: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("telemetry.csv has %d lines, want header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "window_end,sim_time,plants") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Contains(lines[2], "window_end") {
		t.Error("header repeated on later writes")
	}

	for _, name := range []string{"perf.csv", "bookmarks.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// A nil manager is safe to use.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("nil manager reports a directory")
	}
}
