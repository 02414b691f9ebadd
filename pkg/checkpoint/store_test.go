package checkpoint

import (
	"path/filepath"
	"testing"

	"github.com/jihwankim/tiktak/pkg/frontier"
)

func TestNewRejectsEmptyDir(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty dir")
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "checkpoints")
	if _, err := New(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuasirandomPointsRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []frontier.Point{
		{Location: []float64{1, 2}, Value: 0.5},
		{Location: []float64{3, 4}, Value: 1.5},
	}
	if err := s.WriteQuasirandomPoints(want); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := s.ReadQuasirandomPoints()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Value != want[i].Value || got[i].Location[0] != want[i].Location[0] {
			t.Fatalf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAllPointsRoundTrip(t *testing.T) {
	s, _ := New(t.TempDir())
	want := []frontier.Point{{Location: []float64{9}, Value: 9}}
	if err := s.WriteAllPoints(want); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := s.ReadAllPoints()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got) != 1 || got[0].Value != 9 {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLocalMinimaRoundTrip(t *testing.T) {
	s, _ := New(t.TempDir())
	want := []frontier.Point{{Location: []float64{1}, Value: -1}}
	if err := s.WriteLocalMinima(want); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := s.ReadLocalMinima()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got) != 1 || got[0].Value != -1 {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestGlobalMinimumRoundTrip(t *testing.T) {
	s, _ := New(t.TempDir())
	want := frontier.Point{Location: []float64{1, 1}, Value: 0}
	if err := s.WriteGlobalMinimum(want); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := s.ReadGlobalMinimum()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.Value != 0 || got.Location[0] != 1 {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestReadMissingArtefactErrors(t *testing.T) {
	s, _ := New(t.TempDir())
	if _, err := s.ReadGlobalMinimum(); err == nil {
		t.Fatal("expected error reading an artefact that was never written")
	}
}
