package cli

import (
	"errors"
	"testing"

	"github.com/ValentinKolb/kvstore/lib/db"
	"github.com/ValentinKolb/kvstore/lib/db/engines/tsv"
	"github.com/ValentinKolb/kvstore/lib/env"
	"github.com/ValentinKolb/kvstore/lib/store"
	"github.com/ValentinKolb/kvstore/lib/store/lstore"
)

// recordingStore counts saves and can be told to fail them
type recordingStore struct {
	store.IStore
	saves   int
	saveErr error
}

func (r *recordingStore) Save() error {
	r.saves++
	return r.saveErr
}

func mockStore() *recordingStore {
	s := lstore.NewLocalStore(func() db.KVDB { return tsv.NewTSVDB() })
	s.Edit("hello", "earth", false)
	s.Edit("bonjour", "venus", false)
	return &recordingStore{IStore: s}
}

func run(t *testing.T, s store.IStore, args ...string) string {
	t.Helper()
	inv, err := Parse(args)
	if err != nil {
		t.Fatalf("Parse(%v) returned %v", args, err)
	}
	out, err := inv.Run(s, env.NewBuilder(env.MapLookup(map[string]string{"HOME": "/home/me"})))
	if err != nil {
		t.Fatalf("Run(%v) returned %v", args, err)
	}
	return out
}

func TestViewArg(t *testing.T) {
	s := mockStore()
	if got := run(t, s, "hello"); got != "earth" {
		t.Errorf("Expected earth, got %q", got)
	}
	if got := run(t, s, "key_not_found"); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
	if s.saves != 0 {
		t.Errorf("Viewing must not save")
	}
}

func TestHelpAndVersion(t *testing.T) {
	s := mockStore()

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--help"}, Usage},
		{nil, Usage},
		{[]string{"any_key", "--help"}, Usage},
		{[]string{"--help", "--init"}, Usage},
		{[]string{"--version"}, VersionString()},
		{[]string{"--version", "--help"}, VersionString()},
		{[]string{"--version", "--init", "a", "b"}, VersionString()},
	}
	for _, tc := range cases {
		if got := run(t, s, tc.args...); got != tc.want {
			t.Errorf("Run(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
	if s.saves != 0 {
		t.Errorf("Help and version must not save")
	}
}

func TestHelpAndVersionWithoutStore(t *testing.T) {
	for _, args := range [][]string{{"--version"}, {"--help", "x"}, nil} {
		inv, _ := Parse(args)
		if _, err := inv.Run(nil, nil); err != nil {
			t.Errorf("Run(%v) without store returned %v", args, err)
		}
	}
}

func TestEditArg(t *testing.T) {
	s := mockStore()
	if got := run(t, s, "hello", "world"); got != SaveSuccessful {
		t.Errorf("Expected %q, got %q", SaveSuccessful, got)
	}
	if v, _ := s.View("hello"); v != "world" {
		t.Errorf("Expected world, got %s", v)
	}
	if s.saves != 1 {
		t.Errorf("Expected 1 save, got %d", s.saves)
	}
}

func TestEditAndAppendArg(t *testing.T) {
	s := mockStore()
	run(t, s, "hello", ":world", "--append")
	if v, _ := s.View("hello"); v != "earth:world" {
		t.Errorf("Expected earth:world, got %s", v)
	}

	run(t, s, "--append", "new", "value")
	if v, _ := s.View("new"); v != "value" {
		t.Errorf("Expected value, got %s", v)
	}
}

func TestEditSaveFailure(t *testing.T) {
	s := mockStore()
	s.saveErr = store.NewError(store.RetCIO, "cannot write kv.db", errors.New("disk full"))

	inv, _ := Parse([]string{"hello", "world"})
	out, err := inv.Run(s, env.NewBuilder(env.MapLookup(nil)))
	if out != "" {
		t.Errorf("Expected no output on failure, got %q", out)
	}
	var storeErr *store.Error
	if !errors.As(err, &storeErr) || storeErr.Code != store.RetCIO {
		t.Errorf("Expected RetCIO error, got %v", err)
	}
}

func TestInitArg(t *testing.T) {
	s := mockStore()
	s.Edit("HOME", "/elsewhere", false)

	want := "hello=earth bonjour=venus "
	if got := run(t, s, "--init"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	// --init wins over key and value
	if got := run(t, s, "--init", "hello", "mars"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if v, _ := s.View("hello"); v != "earth" {
		t.Errorf("--init must not edit, hello is %s", v)
	}
	if s.saves != 0 {
		t.Errorf("--init must not save")
	}
}

func TestListArg(t *testing.T) {
	s := lstore.NewLocalStore(func() db.KVDB { return tsv.NewTSVDB() })
	s.Edit("hi", "earth", false)
	s.Edit("bonjourx", "venus", false)
	s.Edit("emptyvalue_longest_key", "", false)

	// width comes from all keys, including the skipped empty one
	want := "hi" + spaces(22-2+4) + "earth\n" +
		"bonjourx" + spaces(22-8+4) + "venus"
	if got := run(t, s, "."); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestListAligned(t *testing.T) {
	s := lstore.NewLocalStore(func() db.KVDB { return tsv.NewTSVDB() })
	s.Edit("hi", "earth", false)
	s.Edit("bonjourx", "venus", false)

	want := "hi          earth\nbonjourx    venus"
	if got := List(s); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestListEmpty(t *testing.T) {
	s := lstore.NewLocalStore(func() db.KVDB { return tsv.NewTSVDB() })
	if got := run(t, s, "."); got != "" {
		t.Errorf("Expected empty listing, got %q", got)
	}
}

func TestDotKeyStoredWinsOverListing(t *testing.T) {
	s := mockStore()
	s.Edit(".", "dot", false)
	if got := run(t, s, "."); got != "dot" {
		t.Errorf("Expected stored value for '.', got %q", got)
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
