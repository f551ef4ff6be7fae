package chip8

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ROM is a loaded binary program, copied byte-for-byte into memory
// starting at ProgramStart.
type ROM struct {
	Name string
	Data []byte
}

// LoadROMFile reads path and validates its size, without touching the VM.
// It returns ErrROMNotFound or ErrROMTooLarge (wrapped) so the caller can
// map either to the right exit code.
func LoadROMFile(path string) (ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ROM{}, fmt.Errorf("%w: %s", ErrROMNotFound, path)
		}
		return ROM{}, fmt.Errorf("read rom %s: %w", path, err)
	}
	if len(data) > MaxROMSize {
		return ROM{}, fmt.Errorf("%w: %s is %d bytes, max %d", ErrROMTooLarge, path, len(data), MaxROMSize)
	}
	return ROM{Name: filepath.Base(path), Data: data}, nil
}
