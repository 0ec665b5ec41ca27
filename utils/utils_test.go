package utils_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/kevin-chtw/tw_domino/utils"
	"github.com/sirupsen/logrus"
)

func Test_FormatterLayout(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "hello",
		Caller: &runtime.Frame{
			File:     "a/b/foo.go",
			Line:     42,
			Function: "github.com/kevin-chtw/tw_domino/utils.doThing",
		},
	}

	out, err := (&utils.Formatter{}).Format(entry)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	want := "2025-01-02 03:04:05 [info] foo.go:42 doThing hello\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", string(out), want)
	}
}

func Test_NewSeed(t *testing.T) {
	s1 := utils.NewSeed()
	s2 := utils.NewSeed()
	if s1 == s2 {
		t.Errorf("two seeds are identical: %v", s1)
	}
}
