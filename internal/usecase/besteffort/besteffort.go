// Package besteffort is the single enforcement point for the
// "side effects never block the primary mutation" contract: audit and
// notification calls are wrapped here so a failure (or panic) inside
// them becomes a log line, not a caller-visible error.
package besteffort

import "log"

func Do(label string, fn func() error) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("%s: recovered: %v", label, p)
		}
	}()
	if err := fn(); err != nil {
		log.Printf("%s: %v", label, err)
	}
}
