package bulk

import (
	_ "embed"
	"strings"
)

var (
	//go:embed names/first.txt
	firstNamesFile string
	//go:embed names/last.txt
	lastNamesFile string

	firstNames = splitNames(firstNamesFile)
	lastNames  = splitNames(lastNamesFile)
)

func splitNames(s string) []string {
	return strings.Fields(s)
}
