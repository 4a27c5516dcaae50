package pbxproj

import "strings"

// skipTrivia returns the index after a comment or quoted string starting at i,
// or i itself when there is none. A "//" comment counts only at the start of
// a line; elsewhere the slashes belong to a bare value such as a path.
func skipTrivia(blob string, i int) int {
	switch {
	case strings.HasPrefix(blob[i:], "/*"):
		end := strings.Index(blob[i+2:], "*/")
		if end < 0 {
			return len(blob)
		}

		return i + 2 + end + 2
	case strings.HasPrefix(blob[i:], "//") && startsLine(blob, i):
		end := strings.IndexByte(blob[i:], '\n')
		if end < 0 {
			return len(blob)
		}

		return i + end
	case blob[i] == '"':
		for j := i + 1; j < len(blob); j++ {
			switch blob[j] {
			case '\\':
				j++
			case '"':
				return j + 1
			}
		}

		return len(blob)
	default:
		return i
	}
}

// matchClose returns the index of the bracket closing the one at open,
// skipping nested pairs, comments and quoted strings. It returns -1 when
// the bracket is never closed.
func matchClose(blob string, open int) int {
	var closer byte

	switch blob[open] {
	case '{':
		closer = '}'
	case '(':
		closer = ')'
	default:
		return -1
	}

	opener := blob[open]
	depth := 0

	for i := open; i < len(blob); {
		if next := skipTrivia(blob, i); next != i {
			i = next
			continue
		}

		switch blob[i] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}

		i++
	}

	return -1
}

// lineStart backs up from pos over spaces and tabs. It reports whether only
// indentation separates pos from the previous newline.
func lineStart(blob string, pos int) (int, bool) {
	i := pos
	for i > 0 && (blob[i-1] == ' ' || blob[i-1] == '\t') {
		i--
	}

	return i, i == 0 || blob[i-1] == '\n'
}

// startsLine reports whether only indentation precedes pos on its line.
func startsLine(blob string, pos int) bool {
	_, ownLine := lineStart(blob, pos)

	return ownLine
}

// trimLeftSpace backs up from pos over any whitespace, newlines included.
func trimLeftSpace(blob string, pos int) int {
	for pos > 0 && strings.IndexByte(" \t\r\n", blob[pos-1]) >= 0 {
		pos--
	}

	return pos
}
