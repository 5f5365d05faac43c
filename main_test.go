package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestGatherFiles(t *testing.T) {
	t.Run("duplicates collapse", func(t *testing.T) {
		got := gatherFiles([]string{"testfiles/ch.com", "testfiles/ch.com"})
		want := []string{"testfiles/ch.com"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, wanted %v", got, want)
		}
	})

	t.Run("glob expansion sorted", func(t *testing.T) {
		got := gatherFiles([]string{"testfiles/ch.*"})
		want := []string{
			"testfiles/ch.com",
			"testfiles/ch.gjf",
			"testfiles/ch.in",
			"testfiles/ch.log",
			"testfiles/ch.out",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, wanted %v", got, want)
		}
	})
}

// one bad file in a batch must not disturb its siblings, and the
// return code reports partial success
func TestRunPartialSuccess(t *testing.T) {
	defer func(old Config) { Conf = old }(Conf)
	Conf = Config{Format: "table", Precision: 10, Compact: true}
	var out, errb strings.Builder
	code := run([]string{
		"testfiles/ch.com",
		"testfiles/bad.com",
		"testfiles/ch.in",
	}, &out, &errb)
	if code != 0 {
		t.Errorf("got exit code %d, wanted 0", code)
	}
	if n := strings.Count(out.String(), "Formula: CH"); n != 2 {
		t.Errorf("got %d successful outputs, wanted 2:\n%s", n, out.String())
	}
	if !strings.Contains(errb.String(), "malformed coordinate line") {
		t.Errorf("missing diagnostic for bad file: %q", errb.String())
	}
	if !strings.Contains(errb.String(), "testfiles/bad.com") {
		t.Errorf("diagnostic does not name the file: %q", errb.String())
	}
}

func TestRunNoValidFiles(t *testing.T) {
	defer func(old Config) { Conf = old }(Conf)
	Conf = Config{Format: "table", Precision: 10}
	var out, errb strings.Builder
	if code := run([]string{"testfiles/none.log"}, &out, &errb); code != 1 {
		t.Errorf("got exit code %d, wanted 1", code)
	}
	if code := run([]string{"no/such/file.com"}, &out, &errb); code != 1 {
		t.Errorf("got exit code %d for missing input, wanted 1", code)
	}
}

func TestRunSeparator(t *testing.T) {
	defer func(old Config) { Conf = old }(Conf)
	Conf = Config{Format: "table", Precision: 10, Compact: true}
	var out, errb strings.Builder
	code := run([]string{"testfiles/ch.com", "testfiles/ch.in"}, &out, &errb)
	if code != 0 {
		t.Fatalf("got exit code %d, wanted 0", code)
	}
	want := `Coordinates from testfiles/ch.com | Atoms: 2 | Formula: CH
---
Coordinates from testfiles/ch.in | Atoms: 2 | Formula: CH
`
	if got := out.String(); got != want {
		t.Errorf("got %q, wanted %q", got, want)
	}
}
