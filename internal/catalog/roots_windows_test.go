//go:build windows

package catalog

import "testing"

func TestExpandProgramsValue(t *testing.T) {
	t.Setenv("APPDATA", `C:\Users\test\AppData\Roaming`)

	got := expandProgramsValue(`%APPDATA%\Microsoft\Windows\Start Menu\Programs`)
	want := `C:\Users\test\AppData\Roaming\Microsoft\Windows\Start Menu\Programs`
	if got != want {
		t.Fatalf("expandProgramsValue = %q, want %q", got, want)
	}
}

func TestExpandProgramsValueAlreadyLiteral(t *testing.T) {
	got := expandProgramsValue(`C:\Custom\Programs\`)
	if got != `C:\Custom\Programs` {
		t.Fatalf("expandProgramsValue = %q", got)
	}
}
