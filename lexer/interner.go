package lexer

// Interner implements string interning for token text that repeats
// across a filter expression, most commonly field identifiers that show
// up once per comparison. By maintaining a pool of canonical strings the
// same instance is reused for every occurrence.
type Interner struct {
	pool map[string]string
}

// NewInterner creates a new string interner with the given initial
// capacity.
func NewInterner(capacity int) *Interner {
	return &Interner{
		pool: make(map[string]string, capacity),
	}
}

// Intern returns the canonical version of the string. If the string is
// already in the pool, the existing instance is returned; otherwise it
// is added to the pool.
func (i *Interner) Intern(s string) string {
	if interned, ok := i.pool[s]; ok {
		return interned
	}
	i.pool[s] = s
	return s
}

// Size returns the number of unique strings in the intern pool. Useful
// for diagnostics and testing.
func (i *Interner) Size() int {
	return len(i.pool)
}

// Reset clears the intern pool.
func (i *Interner) Reset() {
	i.pool = make(map[string]string)
}
