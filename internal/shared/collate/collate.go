// Package collate implements the strength-2 string matching used by the
// uniqueness checks: case and accent differences are ignored, everything
// else is significant. The database enforces the same policy on its side;
// this package keeps the in-process checks (and the test fakes) honest.
package collate

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	mu sync.Mutex
	c  = collate.New(language.English, collate.Loose)
)

// Equal reports whether a and b match under the strength-2 collation.
// A collator keeps internal buffers, so comparisons are serialized.
func Equal(a, b string) bool {
	mu.Lock()
	defer mu.Unlock()
	return c.CompareString(a, b) == 0
}
