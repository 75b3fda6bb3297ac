package grid

// Class classifies bytes as symbols or not.
//
// ASCII letters and digits are never symbols. Every other byte is a
// symbol unless it is in the blank set given to NewClass.
type Class struct {
	sym [256]bool
}

// DefaultBlank is the blank set of DefaultClass.
const DefaultBlank = "."

func NewClass(blank string) *Class {
	c := &Class{}
	for i := range c.sym {
		b := byte(i)
		c.sym[i] = !isLetter(b) && !isDigit(b)
	}
	for i := 0; i < len(blank); i++ {
		c.sym[blank[i]] = false
	}
	return c
}

// DefaultClass treats everything but letters, digits and '.' as a symbol.
func DefaultClass() *Class {
	return NewClass(DefaultBlank)
}

func (c *Class) IsSymbol(b byte) bool {
	return c.sym[b]
}

func (c *Class) HasSymbol(s string) bool {
	for i := 0; i < len(s); i++ {
		if c.sym[s[i]] {
			return true
		}
	}
	return false
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
