package lexer

// The RuneSupplier gives us something simpler than a lexer that we can use in the lexer itself and
// in the REPL, which only needs to know whether the brackets it has been given are balanced yet.
type RuneSupplier struct {
	code      []rune
	pos       int
	lineNo    int
	lineStart int
}

func NewRuneSupplier(code []rune) *RuneSupplier {
	return &RuneSupplier{code: code, lineNo: 1}
}

func (rs *RuneSupplier) CurrentRune() rune {
	if rs.pos < len(rs.code) {
		return rs.code[rs.pos]
	}
	return 0
}

func (rs *RuneSupplier) PeekRune() rune {
	if rs.pos+1 < len(rs.code) {
		return rs.code[rs.pos+1]
	}
	return 0
}

func (rs *RuneSupplier) Next() {
	if rs.pos >= len(rs.code) {
		return
	}
	if rs.code[rs.pos] == '\n' {
		rs.lineNo++
		rs.lineStart = rs.pos + 1
	}
	rs.pos++
}

func (rs *RuneSupplier) AtEnd() bool {
	return rs.pos >= len(rs.code)
}

func (rs *RuneSupplier) Position() (int, int) {
	return rs.lineNo, rs.pos - rs.lineStart
}

// ReadString is called on the opening quote and leaves the supplier on the closing one. It reports
// false if the input ran out first. Unknown escapes stand for the escaped character.
func (rs *RuneSupplier) ReadString() (string, bool) {
	var result []rune
	for {
		rs.Next()
		if rs.AtEnd() {
			return string(result), false
		}
		ch := rs.CurrentRune()
		if ch == '"' {
			return string(result), true
		}
		if ch == '\\' {
			rs.Next()
			if rs.AtEnd() {
				return string(result), false
			}
			ch = rs.CurrentRune()
			switch ch {
			case 'n':
				ch = '\n'
			case 'r':
				ch = '\r'
			case 't':
				ch = '\t'
			case 'e':
				ch = '\033'
			}
		}
		result = append(result, ch)
	}
}

// ReadComment is called on the ';' and leaves the supplier on the last rune before the newline.
func (rs *RuneSupplier) ReadComment() string {
	var result []rune
	for rs.PeekRune() != '\n' && rs.PeekRune() != 0 {
		rs.Next()
		result = append(result, rs.CurrentRune())
	}
	return string(result)
}

// ReadAtom reads up to the next delimiter and leaves the supplier on the atom's last rune.
func (rs *RuneSupplier) ReadAtom() string {
	result := []rune{rs.CurrentRune()}
	for !IsDelimiter(rs.PeekRune()) {
		rs.Next()
		result = append(result, rs.CurrentRune())
	}
	return string(result)
}
