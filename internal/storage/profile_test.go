package storage

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/sumfall/internal/progression"
)

func TestProfileRepoDefaults(t *testing.T) {
	repo := NewProfileRepo(NewMemoryKV(), ProfileKey, quietLogger())

	p := repo.Load()
	if p.Best("easy") != 0 || len(p.Achievements) != 0 {
		t.Errorf("missing profile should load empty, got %+v", p)
	}
	p.MaxPointsByDifficulty["easy"] = 1
}

func TestProfileRepoCorrupt(t *testing.T) {
	kv := NewMemoryKV()
	kv.Put(ProfileKey, []byte("not a profile"))
	repo := NewProfileRepo(kv, ProfileKey, quietLogger())

	if p := repo.Load(); p.Best("easy") != 0 {
		t.Errorf("corrupt profile should load empty, got %+v", p)
	}
}

func TestProfileRepoRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "profile.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	repo := NewProfileRepo(store, ProfileKey, quietLogger())

	p := progression.NewProfile()
	p.MaxPointsByDifficulty["nightmare+"] = 1230
	p.Achievements["nightmare+_1000"] = true
	if err := repo.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	got := repo.Load()
	if got.Best("nightmare+") != 1230 || !got.Has("nightmare+_1000") {
		t.Errorf("Load() = %+v", got)
	}

	if err := repo.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := repo.Load(); got.Best("nightmare+") != 0 {
		t.Error("Reset should remove the profile")
	}
}

func TestProfileRepoPartialJSON(t *testing.T) {
	kv := NewMemoryKV()
	kv.Put(ProfileKey, []byte(`{"max_points_by_difficulty":{"hard":70}}`))
	repo := NewProfileRepo(kv, ProfileKey, quietLogger())

	p := repo.Load()
	if p.Best("hard") != 70 {
		t.Errorf("Best(hard) = %d, expected 70", p.Best("hard"))
	}
	// Missing maps are usable after load.
	p.Achievements["hard_500"] = true
}

func TestProfileRepoWithTracker(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewProfileRepo(kv, ProfileKey, quietLogger())
	tracker := progression.NewTracker(repo.Load(), nil, repo, quietLogger())

	tracker.PointsChanged("easy", 80)

	if got := repo.Load().Best("easy"); got != 80 {
		t.Errorf("tracker should persist through the repo, Best(easy) = %d", got)
	}
}
