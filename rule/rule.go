package rule

const (
	CR byte = '\r'
	LF byte = '\n'
	SP byte = ' '
)

var CRLF = []byte{CR, LF}

func IsAlpha(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }
func IsDigit(r rune) bool { return '0' <= r && r <= '9' }
