package lstore

import (
	"slices"
	"testing"

	"github.com/ValentinKolb/kvstore/lib/db"
	"github.com/ValentinKolb/kvstore/lib/db/engines/tsv"
)

func newStore() *storeImpl {
	return NewLocalStore(func() db.KVDB { return tsv.NewTSVDB() }).(*storeImpl)
}

func TestEditAndView(t *testing.T) {
	s := newStore()

	s.Edit("hello", "earth", false)
	s.Edit("bonjour", "venus", false)

	if v, ok := s.View("hello"); !ok || v != "earth" {
		t.Errorf("Expected (earth, true), got (%s, %v)", v, ok)
	}
	if _, ok := s.View("konnichiwa"); ok {
		t.Error("Expected konnichiwa to be missing")
	}

	s.Edit("hello", ":world", true)
	if v, _ := s.View("hello"); v != "earth:world" {
		t.Errorf("Expected earth:world, got %s", v)
	}

	s.Edit("hello", "mars", false)
	if v, _ := s.View("hello"); v != "mars" {
		t.Errorf("Expected mars, got %s", v)
	}

	if got := slices.Collect(s.Keys()); !slices.Equal(got, []string{"hello", "bonjour"}) {
		t.Errorf("Unexpected keys %v", got)
	}
}

func TestSaveIsNoop(t *testing.T) {
	s := newStore()
	s.Edit("a", "b", false)
	if err := s.Save(); err != nil {
		t.Errorf("Save returned %v", err)
	}
	if v, _ := s.View("a"); v != "b" {
		t.Errorf("Save changed the store")
	}
}
