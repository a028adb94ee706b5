// File: paramstore/convenience.go
package paramstore

import "errors"

// Load creates a handler populated from a TOML parameter file and
// command-line arguments, CLI values taking precedence. A missing file is
// not fatal: the handler is still returned, together with ErrConfigNotFound
// so the caller can tell. This is the one-call path for most applications:
//
//	h, err := paramstore.Load("input.toml", os.Args[1:])
//	if err != nil && !errors.Is(err, paramstore.ErrConfigNotFound) {
//	    log.Fatal(err)
//	}
//	if err := controller.Check(h); err != nil {
//	    log.Fatal(err)
//	}
func Load(path string, argv []string) (*Handler[string], error) {
	h := NewHandler[string]()

	var loadErr error
	if path != "" {
		if err := LoadFile(h, path); err != nil {
			if !errors.Is(err, ErrConfigNotFound) {
				return nil, err
			}
			loadErr = err
		}
	}

	if len(argv) > 0 {
		ApplyArgs(h, ParseArgs(argv))
	}

	// loadErr is ErrConfigNotFound or nil
	return h, loadErr
}
