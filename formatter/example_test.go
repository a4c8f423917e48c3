package formatter_test

import (
	"fmt"
	"time"

	"github.com/martidominguez/nanolog/core"
	"github.com/martidominguez/nanolog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	rec := &core.Record{
		Seq:     1,
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Tag:     "MAIN",
		Message: "hello world",
	}

	out, _ := f.Format(rec)
	fmt.Print(string(out))
	// Output:
	// [1] I : [MAIN] hello world
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	rec := &core.Record{
		Seq:     7,
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.ErrorLevel,
		Tag:     "NET",
		Message: "request failed",
	}

	out, _ := f.Format(rec)
	fmt.Print(string(out))
	// Output:
	// {"seq":7,"level":"ERROR","tag":"NET","message":"request failed"}
}
