//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package region

import "fmt"

const unixSupported = false

func openUnix(path string) (Region, error) {
	return nil, fmt.Errorf("%w: %q is not available on this platform", ErrUnknownBackend, Unix)
}
