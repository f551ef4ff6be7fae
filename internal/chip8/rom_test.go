package chip8

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadROMFileNotFound(t *testing.T) {
	_, err := LoadROMFile(filepath.Join(t.TempDir(), "missing.ch8"))
	require.ErrorIs(t, err, ErrROMNotFound)
}

func TestLoadROMFileTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.ch8")
	require.NoError(t, os.WriteFile(path, make([]byte, MaxROMSize+1), 0o644))

	_, err := LoadROMFile(path)
	require.ErrorIs(t, err, ErrROMTooLarge)
}

func TestLoadROMFileOK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.ch8")
	data := []byte{0x00, 0xE0, 0x12, 0x00}
	require.NoError(t, os.WriteFile(path, data, 0o644))

	rom, err := LoadROMFile(path)
	require.NoError(t, err)
	require.Equal(t, "ok.ch8", rom.Name)
	require.Equal(t, data, rom.Data)
}
