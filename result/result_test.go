package result

import (
	"strings"
	"testing"
)

func TestOk(t *testing.T) {
	s := Ok()
	if !s.IsOk() {
		t.Error("Ok() is not ok")
	}
	if s.Error() != "OK" {
		t.Errorf("Ok().Error() = %q", s.Error())
	}
}

func TestFailf(t *testing.T) {
	s := Failf(ErrTimeout, "NET", "no response after %d ms", 500)

	if s.IsOk() {
		t.Error("failure reports ok")
	}
	if s.Code != ErrTimeout {
		t.Errorf("code = %v", s.Code)
	}
	if s.Description != "no response after 500 ms" {
		t.Errorf("description = %q", s.Description)
	}
	if s.Error() != "[NET] TIMEOUT: no response after 500 ms" {
		t.Errorf("Error() = %q", s.Error())
	}
}

func TestFailfWithoutTag(t *testing.T) {
	s := Failf(ErrFail, "", "broken")
	if s.Error() != "FAIL: broken" {
		t.Errorf("Error() = %q", s.Error())
	}
}

func TestFailfBounds(t *testing.T) {
	s := Failf(ErrInvalidArg, "AVERYLONGTAGNAMEINDEED", "%s", strings.Repeat("d", 500))

	if len(s.Tag) != 15 {
		t.Errorf("tag length = %d, want 15", len(s.Tag))
	}
	if len(s.Description) != MaxDescLen {
		t.Errorf("description length = %d, want %d", len(s.Description), MaxDescLen)
	}
}

func TestStatusAsError(t *testing.T) {
	var err error = Failf(ErrNotSupported, "CFG", "network backend")
	if err == nil || !strings.Contains(err.Error(), "NOT_SUPPORTED") {
		t.Errorf("err = %v", err)
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{OK, "OK"},
		{ErrFail, "FAIL"},
		{ErrInvalidArg, "INVALID_ARG"},
		{ErrTimeout, "TIMEOUT"},
		{ErrNoMemory, "NO_MEMORY"},
		{ErrNotSupported, "NOT_SUPPORTED"},
		{Code(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
