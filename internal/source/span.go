package source

import (
	"fmt"
)

type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Contains reports whether the byte offset lies inside the half-open span.
func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off < s.End
}

// Text slices the span out of the file content. The span must belong to f.
func (s Span) Text(f *File) string {
	if s.Start > s.End || int(s.End) > len(f.Content) {
		return ""
	}
	return string(f.Content[s.Start:s.End])
}

// ZeroideToStart collapses the span to a zero-length span at its start.
func (s Span) ZeroideToStart() Span {
	s.End = s.Start
	return s
}

// ZeroideToEnd collapses the span to a zero-length span at its end.
func (s Span) ZeroideToEnd() Span {
	s.Start = s.End
	return s
}

func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// ShiftLeft moves the span left by n bytes. Shifts that would underflow
// return the span unchanged.
func (s Span) ShiftLeft(n uint32) Span {
	if n > s.Start {
		return s
	}
	return Span{
		File:  s.File,
		Start: s.Start - n,
		End:   s.End - n,
	}
}

// ShiftRight moves the span right by n bytes. Shifts larger than the span
// length, or that would overflow, return the span unchanged.
func (s Span) ShiftRight(n uint32) Span {
	if n > s.Len() || s.End > ^uint32(0)-n {
		return s
	}
	return Span{
		File:  s.File,
		Start: s.Start + n,
		End:   s.End + n,
	}
}
