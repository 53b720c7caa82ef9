package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func numberWord(n int) string {
	words := []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight"}
	if n < len(words) {
		return words[n]
	}
	return strconv.Itoa(n)
}

func fieldUnpack(receiver string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(receiver)
		sb.WriteString(".A")
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func typedParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("a")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" T")
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
