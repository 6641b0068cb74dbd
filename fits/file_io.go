package fits

import (
	"fmt"
	"os"
)

// Open reads and decodes a FITS file from disk. The codec itself is
// buffer-only; this is a convenience over Decode.
func Open(path string, opts ...DecodeOption) (*File, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	f, err := Decode(buf, opts...)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return f, nil
}

// WriteFile serializes the file to disk.
func (f *File) WriteFile(path string) error {
	return os.WriteFile(path, f.Encode(), 0o644)
}
