package main

import "testing"

func TestMainWiring(t *testing.T) {
	origSetVersion := setVersionInfo
	origExecute := executeCmd
	t.Cleanup(func() {
		setVersionInfo = origSetVersion
		executeCmd = origExecute
	})

	var gotVersion string
	executed := false
	setVersionInfo = func(v, c, d string) { gotVersion = v + "/" + c + "/" + d }
	executeCmd = func() { executed = true }

	main()

	if gotVersion != "dev/none/unknown" {
		t.Fatalf("unexpected version info %q", gotVersion)
	}
	if !executed {
		t.Fatal("expected root command to execute")
	}
}
