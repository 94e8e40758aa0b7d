package access

import (
	"fmt"
	"strings"
)

// Class is one of the three permission classes a mode triple encodes
type Class int

const (
	Read Class = iota
	Write
	Execute
)

// Bits returns the owner, group and other mode bits for the class
func (c Class) Bits() (owner, group, other uint32) {
	switch c {
	case Read:
		return 0o400, 0o040, 0o004
	case Write:
		return 0o200, 0o020, 0o002
	case Execute:
		return 0o100, 0o010, 0o001
	}
	return 0, 0, 0
}

func (c Class) String() string {
	switch c {
	case Read:
		return "read"
	case Write:
		return "write"
	case Execute:
		return "execute"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Mask is a set of classes to test. The values match the amode argument of
// access(2), and the zero Mask asks only whether the file exists.
type Mask uint8

const (
	Exists      Mask = 0
	MaskExecute Mask = 1
	MaskWrite   Mask = 2
	MaskRead    Mask = 4

	maskAll = MaskRead | MaskWrite | MaskExecute
)

// MaskOf returns the single-class mask for c
func MaskOf(c Class) Mask {
	switch c {
	case Read:
		return MaskRead
	case Write:
		return MaskWrite
	case Execute:
		return MaskExecute
	}
	return Exists
}

// Has reports whether c is part of the mask
func (m Mask) Has(c Class) bool {
	bit := MaskOf(c)
	return bit != Exists && m&bit == bit
}

// Classes returns the requested classes in evaluation order: read, write, execute
func (m Mask) Classes() []Class {
	var classes []Class
	for _, c := range []Class{Read, Write, Execute} {
		if m.Has(c) {
			classes = append(classes, c)
		}
	}
	return classes
}

// Valid reports whether the mask only uses the three class bits
func (m Mask) Valid() bool {
	return m&^maskAll == 0
}

// String renders the mask as "f" for existence or an rwx triple
func (m Mask) String() string {
	if m == Exists {
		return "f"
	}
	var b strings.Builder
	for _, c := range []struct {
		class Class
		char  byte
	}{{Read, 'r'}, {Write, 'w'}, {Execute, 'x'}} {
		if m.Has(c.class) {
			b.WriteByte(c.char)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// ParseMask reads a mask written as letters ("r", "rw", "x", "f" for
// existence) or as a single octal digit 0-7.
func ParseMask(s string) (Mask, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "f" {
		return Exists, nil
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '7' {
		return Mask(s[0] - '0'), nil
	}

	var m Mask
	for _, r := range s {
		switch r {
		case 'r':
			m |= MaskRead
		case 'w':
			m |= MaskWrite
		case 'x':
			m |= MaskExecute
		case '-':
		default:
			return Exists, fmt.Errorf("%w: mask %q: unexpected %q", ErrInvalidArgument, s, r)
		}
	}
	return m, nil
}
