package utils

import (
	"strconv"
	"strings"
)

// Joinor lists items for a prompt: "1", "1 or 2", "1, 2, or 3".
func Joinor(items []int, delim, word string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = strconv.Itoa(item)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1, 2:
		return strings.Join(parts, " "+word+" ")
	default:
		parts[len(parts)-1] = word + " " + parts[len(parts)-1]
		return strings.Join(parts, delim)
	}
}
