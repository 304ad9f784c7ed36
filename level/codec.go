package level

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// EncodedSize is the byte length of a .lvl file: Area little-endian uint16s.
const EncodedSize = Area * 2

// MarshalBinary encodes l in the .lvl format.
func (l *Level) MarshalBinary() ([]byte, error) {
	buf := make([]byte, EncodedSize)
	for i, t := range l {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(t))
	}
	return buf, nil
}

// UnmarshalBinary decodes exactly EncodedSize bytes into l.
func (l *Level) UnmarshalBinary(data []byte) error {
	if len(data) != EncodedSize {
		return fmt.Errorf("%w: %d bytes, want %d", ErrShortRead, len(data), EncodedSize)
	}
	for i := range l {
		l[i] = Tile(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return nil
}

// Write transfers all Area tiles to w or fails.
func Write(w io.Writer, l *Level) error {
	buf, _ := l.MarshalBinary()
	n, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrShortWrite, err)
	}
	if n != len(buf) {
		return fmt.Errorf("%w: %w", ErrShortWrite, io.ErrShortWrite)
	}
	return nil
}

// Read transfers exactly Area tiles from r or fails. Trailing data is left
// unread.
func Read(r io.Reader) (*Level, error) {
	buf := make([]byte, EncodedSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShortRead, err)
	}
	l := New()
	if err := l.UnmarshalBinary(buf); err != nil {
		return nil, err
	}
	return l, nil
}

// ReadFile loads a .lvl file.
func ReadFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// WriteFile stores l as a .lvl file, replacing any existing file.
func WriteFile(path string, l *Level) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, l); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
