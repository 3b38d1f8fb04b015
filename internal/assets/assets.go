// Package assets bundles the static artwork shown at startup.
package assets

import (
	_ "embed"
	"strings"
)

//go:embed ampoule.txt
var ampoule string

// Banner returns the ampoule artwork without its trailing newline.
func Banner() string {
	return strings.TrimRight(ampoule, "\n")
}
