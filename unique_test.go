package loom

import "testing"

type testConfig struct{ MaxPlayers int }

func TestUniqueInstallAndFetch(t *testing.T) {
	w := NewWorld()
	AddUnique(w, &testConfig{MaxPlayers: 4})

	got := GetUnique[testConfig](w)
	if got == nil || got.MaxPlayers != 4 {
		t.Fatalf("GetUnique = %+v, want MaxPlayers=4", got)
	}

	RemoveUnique[testConfig](w)
	if GetUnique[testConfig](w) != nil {
		t.Error("expected unique to be gone after RemoveUnique")
	}
}

func TestUniqParamPanicsWhenMissing(t *testing.T) {
	w := NewWorld()
	shard, err := w.Shard(UniqParam[testConfig]().accessRequest())
	if err != nil {
		t.Fatalf("unexpected shard conflict: %v", err)
	}
	defer w.ReleaseShard(shard)

	defer func() {
		if recover() == nil {
			t.Error("expected a panic when the unique hasn't been installed")
		}
	}()
	UniqParam[testConfig]().extract(shard)
}

func TestOptUniqParamReturnsEmptyOptionWhenMissing(t *testing.T) {
	w := NewWorld()
	shard, _ := w.Shard(OptUniqParam[testConfig]().accessRequest())
	defer w.ReleaseShard(shard)

	opt := OptUniqParam[testConfig]().extract(shard)
	if _, ok := opt.Get(); ok {
		t.Error("expected Option to report not-ok when the unique is missing")
	}

	AddUnique(w, &testConfig{MaxPlayers: 8})
	opt = OptUniqParam[testConfig]().extract(shard)
	v, ok := opt.Get()
	if !ok || v.Get().MaxPlayers != 8 {
		t.Errorf("expected installed unique to surface, got %+v ok=%v", v, ok)
	}
}
