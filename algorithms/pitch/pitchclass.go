package pitch

import "math/bits"

// ClassSet is a set of pitch classes packed into the low 12 bits of a uint16.
// Bit i is pitch class i (0=C .. 11=B). The representation keeps the
// analysis hot path allocation-free and makes invalid classes
// unrepresentable after masking.
type ClassSet uint16

// classMask keeps ClassSet values inside the 12 valid bits.
const classMask ClassSet = 0x0FFF

// NewClassSet builds a set from explicit pitch classes.
func NewClassSet(classes ...uint8) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.Set(c)
	}
	return s
}

// Set returns the set with the given class added.
func (s ClassSet) Set(class uint8) ClassSet {
	return (s | 1<<(class%12)) & classMask
}

// Clear returns the set with the given class removed.
func (s ClassSet) Clear(class uint8) ClassSet {
	return s &^ (1 << (class % 12))
}

// Contains reports whether the class is in the set.
func (s ClassSet) Contains(class uint8) bool {
	return s&(1<<(class%12)) != 0
}

// Count returns the number of classes in the set.
func (s ClassSet) Count() int {
	return bits.OnesCount16(uint16(s & classMask))
}

// Rotate shifts every class up by the given number of semitones, wrapping
// at the octave. Rotating a root-relative template by r yields the template
// transposed to root r.
func (s ClassSet) Rotate(semitones uint8) ClassSet {
	r := semitones % 12
	v := uint16(s & classMask)
	return ClassSet(v<<r|v>>(12-r)) & classMask
}

// Classes appends the classes in the set, ascending, to dst and returns it.
// Pass a slice with spare capacity to avoid allocation.
func (s ClassSet) Classes(dst []uint8) []uint8 {
	for c := uint8(0); c < 12; c++ {
		if s.Contains(c) {
			dst = append(dst, c)
		}
	}
	return dst
}

// String renders the set as a chroma bit pattern, C first.
func (s ClassSet) String() string {
	b := make([]byte, 12)
	for c := uint8(0); c < 12; c++ {
		if s.Contains(c) {
			b[c] = '1'
		} else {
			b[c] = '0'
		}
	}
	return string(b)
}
