package rax

import "golang.org/x/text/unicode/norm"

// Key is a Unicode-normalized byte key, ready to hand to Tree's operations.
// Tree itself accepts any []byte directly as a key; Key exists only for
// callers who want two Unicode-equivalent strings (e.g. a precomposed
// accented character vs. its decomposed combining-mark form) to land on the
// identical tree key rather than two different ones.
type Key []byte

// FromString returns a Key holding s's UTF-8 bytes after normalizing s to
// Unicode NFC. FromString does not alter case or trim spaces.
func FromString(s string) Key {
	return Key(norm.NFC.String(s))
}

// Bytes returns a copy of the Key's bytes, suitable for Tree.Insert,
// Tree.Find, or Tree.Delete.
func (k Key) Bytes() []byte {
	if k == nil {
		return nil
	}
	b := make([]byte, len(k))
	copy(b, k)
	return b
}
