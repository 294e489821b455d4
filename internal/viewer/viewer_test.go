package viewer

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func load(t *testing.T, path string) *goquery.Document {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open viewer: %v", err)
	}
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		t.Fatalf("parse viewer: %v", err)
	}
	return doc
}

func TestWriteViewer(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := Write(dir, Options{Frames: 101})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if filepath.Base(path) != FileName {
		t.Errorf("unexpected file name %s", path)
	}

	doc := load(t, path)

	for _, id := range []string{"currentFrame", "playButton", "prevButton", "nextButton", "firstButton", "lastButton", "speedSlider", "loopToggle", "pingpongToggle", "progressBar", "frameTitle", "themeToggle"} {
		if doc.Find("#"+id).Length() != 1 {
			t.Errorf("missing #%s", id)
		}
	}

	if got := doc.Find("#totalSteps").Text(); got != "100" {
		t.Errorf("expected 100 steps, got %q", got)
	}
	if src, _ := doc.Find("#currentFrame").Attr("src"); src != "step_000.png" {
		t.Errorf("unexpected first frame %q", src)
	}
	if src, _ := doc.Find("#afterFrame").Attr("src"); src != "combined_space.png" {
		t.Errorf("unexpected combined image %q", src)
	}

	script := doc.Find("script").Text()
	if !regexp.MustCompile(`totalFrames\s*=\s*101\b`).MatchString(script) {
		t.Error("frame count missing from script")
	}
	if !strings.Contains(script, "Combined Multimodal Space") {
		t.Error("descriptions missing from script")
	}
}

func TestWriteViewerFrameDir(t *testing.T) {
	path, err := Write(t.TempDir(), Options{Frames: 11, FrameDir: "../viz_static", Title: "Run <1>"})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}

	doc := load(t, path)
	if src, _ := doc.Find("#currentFrame").Attr("src"); src != "../viz_static/step_00.png" {
		t.Errorf("unexpected first frame %q", src)
	}
	if doc.Find("h1").Text() != "Run <1>" {
		t.Errorf("unexpected title %q", doc.Find("h1").Text())
	}
}

func TestWriteViewerRejectsZeroFrames(t *testing.T) {
	if _, err := Write(t.TempDir(), Options{Frames: 0}); err == nil {
		t.Error("expected error for zero frames")
	}
}

func TestDescriptions(t *testing.T) {
	for _, frames := range []int{1, 2, 5, 101} {
		d := Descriptions(frames)
		if len(d) != frames+1 {
			t.Errorf("frames=%d: expected %d descriptions, got %d", frames, frames+1, len(d))
		}
		if d[0].Title != "Initial Misaligned Spaces" {
			t.Errorf("frames=%d: unexpected first title %q", frames, d[0].Title)
		}
		if d[len(d)-1].Title != "Combined Multimodal Space" {
			t.Errorf("frames=%d: unexpected last title %q", frames, d[len(d)-1].Title)
		}
	}
	if Descriptions(101)[100].Title != "Complete Alignment" {
		t.Error("last frame should be complete alignment")
	}
	if Descriptions(0) != nil {
		t.Error("expected nil for zero frames")
	}
}
