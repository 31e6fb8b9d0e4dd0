package progression

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sumfall/internal/config"
)

type recordingSaver struct {
	saved []Profile
	err   error
}

func (r *recordingSaver) SaveProfile(p Profile) error {
	r.saved = append(r.saved, p)
	return r.err
}

func testCatalog() Catalog {
	return NewCatalog(config.DefaultConfig())
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestPointsChangedRaisesBest(t *testing.T) {
	saver := &recordingSaver{}
	tr := NewTracker(NewProfile(), testCatalog(), saver, quietLogger())

	tr.PointsChanged("hard", 40)
	tr.PointsChanged("hard", 30)
	tr.PointsChanged("easy", 20)

	p := tr.Profile()
	if p.Best("hard") != 40 {
		t.Errorf("Best(hard) = %d, expected 40", p.Best("hard"))
	}
	if p.Best("easy") != 20 {
		t.Errorf("Best(easy) = %d, expected 20", p.Best("easy"))
	}
	if p.Best("expert") != 0 {
		t.Errorf("Best(expert) = %d, expected 0", p.Best("expert"))
	}
	if len(saver.saved) != 2 {
		t.Errorf("profile saved %d times, expected 2 (only on a new best)", len(saver.saved))
	}
}

func TestUnlockHighestOnly(t *testing.T) {
	tr := NewTracker(NewProfile(), testCatalog(), nil, quietLogger())

	// Jumping straight past 500 and 1000 unlocks only the 1000 achievement.
	tr.PointsChanged("medium", 1200)

	got := tr.Unlocked()
	if len(got) != 1 || got[0].ID != "medium_1000" {
		t.Fatalf("Unlocked() = %+v, expected medium_1000", got)
	}
	p := tr.Profile()
	if p.Has("medium_500") {
		t.Error("lower threshold crossed in the same jump should stay locked")
	}
	if len(tr.Unlocked()) != 0 {
		t.Error("Unlocked() should drain")
	}

	// A later best below the next threshold unlocks the skipped one.
	tr.PointsChanged("medium", 1300)
	got = tr.Unlocked()
	if len(got) != 1 || got[0].ID != "medium_500" {
		t.Fatalf("Unlocked() = %+v, expected medium_500", got)
	}

	tr.PointsChanged("medium", 1400)
	if got := tr.Unlocked(); len(got) != 0 {
		t.Errorf("nothing left to unlock, got %+v", got)
	}
}

func TestUnlockRequiresNewBest(t *testing.T) {
	profile := NewProfile()
	profile.MaxPointsByDifficulty["easy"] = 900
	tr := NewTracker(profile, testCatalog(), nil, quietLogger())

	tr.PointsChanged("easy", 600)
	if got := tr.Unlocked(); len(got) != 0 {
		t.Errorf("points below the stored best should not unlock, got %+v", got)
	}

	tr.PointsChanged("easy", 950)
	if got := tr.Unlocked(); len(got) != 1 || got[0].ID != "easy_500" {
		t.Errorf("Unlocked() = %+v, expected easy_500", got)
	}
}

func TestUnlockIsPerDifficulty(t *testing.T) {
	tr := NewTracker(NewProfile(), testCatalog(), nil, quietLogger())
	tr.PointsChanged("nightmare++", 520)

	got := tr.Unlocked()
	if len(got) != 1 || got[0].ID != "nightmare++_500" || got[0].Difficulty != "nightmare++" {
		t.Errorf("Unlocked() = %+v, expected nightmare++_500", got)
	}
	if tr.Profile().Has("easy_500") {
		t.Error("other difficulties must not unlock")
	}
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	tr := NewTracker(NewProfile(), testCatalog(), saver, quietLogger())

	tr.PointsChanged("easy", 600)

	if tr.Profile().Best("easy") != 600 {
		t.Error("in-memory profile should still update")
	}
	if len(tr.Unlocked()) != 1 {
		t.Error("unlock should still be reported")
	}
}

func TestStats(t *testing.T) {
	profile := NewProfile()
	profile.Achievements["easy_500"] = true
	profile.Achievements["easy_1000"] = false
	tr := NewTracker(profile, testCatalog(), nil, quietLogger())

	s := tr.Stats()
	if s.Unlocked != 1 || s.Total != 35 {
		t.Errorf("Stats() = %+v, expected 1/35", s)
	}
}

func TestTrackerDoesNotAliasProfile(t *testing.T) {
	profile := NewProfile()
	tr := NewTracker(profile, testCatalog(), nil, quietLogger())
	tr.PointsChanged("easy", 10)

	if profile.Best("easy") != 0 {
		t.Error("tracker mutated the caller's profile")
	}

	p := tr.Profile()
	p.MaxPointsByDifficulty["easy"] = 9999
	if tr.Profile().Best("easy") != 10 {
		t.Error("Profile() should return a copy")
	}
}

func TestCatalogForDifficulty(t *testing.T) {
	c := testCatalog()
	hard := c.ForDifficulty("hard")
	if len(hard) != 5 {
		t.Fatalf("ForDifficulty(hard) has %d entries, expected 5", len(hard))
	}
	for i, pts := range []int{500, 1000, 2000, 3000, 5000} {
		if hard[i].Points != pts {
			t.Errorf("hard[%d].Points = %d, expected %d", i, hard[i].Points, pts)
		}
	}
}

func TestProfileCloneNilMaps(t *testing.T) {
	var p Profile
	c := p.Clone()
	c.MaxPointsByDifficulty["easy"] = 1
	c.Achievements["x"] = true
}
