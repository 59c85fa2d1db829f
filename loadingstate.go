package main

// loadingState tracks which fetches have completed, keyed by name.
type loadingState map[string]bool

func newLoadingState(keys ...string) loadingState {
	l := make(loadingState, len(keys))
	for _, k := range keys {
		l[k] = false
	}
	return l
}

// set marks the key as loaded
func (l loadingState) set(key string) {
	l[key] = true
}

// unset marks the key as pending again
func (l loadingState) unset(key string) {
	l[key] = false
}

// reset marks every key as pending
func (l loadingState) reset() {
	for k := range l {
		l[k] = false
	}
}

// allLoaded returns true when nothing is pending, otherwise the first
// pending key found
func (l loadingState) allLoaded() (bool, string) {
	for k, v := range l {
		if !v {
			return false, k
		}
	}

	return true, ""
}
