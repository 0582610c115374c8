package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bmdebug/bmdebug/config"
	"github.com/bmdebug/bmdebug/test"
)

func tmpFile(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func TestGlobal_defaults(t *testing.T) {
	g, err := config.NewGlobal(tmpFile(t, "bmdebug.cfg"))
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, g.GdbPath.Get(), "arm-none-eabi-gdb")
	test.ExpectEquality(t, g.ProbeIndex.Get(), 1)
}

func TestGlobal_saveLoadRoundTrip(t *testing.T) {
	fn := tmpFile(t, "bmdebug.cfg")

	g, err := config.NewGlobal(fn)
	test.ExpectSuccess(t, err == nil)

	g.WindowWidth.Set(1024)
	g.WindowHeight.Set(768)
	g.SplitterSourceDisasm.Set(0.6)
	g.PanelExpanded.Set(true)
	g.GdbPath.Set("/opt/gcc-arm/bin/arm-none-eabi-gdb")
	g.ProbeIndex.Set(2)
	g.IPAddress.Set("192.168.1.50")
	g.RecentELF.Set("firmware.elf")
	g.AddCommand("break main")
	g.AddCommand("continue")

	test.ExpectSuccess(t, g.Save() == nil)

	g2, err := config.NewGlobal(fn)
	test.ExpectSuccess(t, err == nil)

	test.ExpectEquality(t, g2.WindowWidth.Get(), 1024)
	test.ExpectEquality(t, g2.WindowHeight.Get(), 768)
	test.ExpectEquality(t, g2.SplitterSourceDisasm.Get(), 0.6)
	test.ExpectSuccess(t, g2.PanelExpanded.Get())
	test.ExpectEquality(t, g2.GdbPath.Get(), "/opt/gcc-arm/bin/arm-none-eabi-gdb")
	test.ExpectEquality(t, g2.ProbeIndex.Get(), 2)
	test.ExpectEquality(t, g2.IPAddress.Get(), "192.168.1.50")
	test.ExpectEquality(t, g2.RecentELF.Get(), "firmware.elf")
	test.ExpectEquality(t, len(g2.History().Entries()), 2)
	test.ExpectEquality(t, g2.History().Entries()[1], "continue")
}

func TestGlobal_missingFileIsNotAnError(t *testing.T) {
	_, err := os.Stat(tmpFile(t, "does-not-exist.cfg"))
	test.ExpectSuccess(t, os.IsNotExist(err))

	g, err := config.NewGlobal(filepath.Join(t.TempDir(), "does-not-exist.cfg"))
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, g.WindowWidth.Get(), 0)
}
