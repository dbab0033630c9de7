//go:build !windows

package godmode

import "errors"

var errNoCOM = errors.New("shell automation requires windows")

func (e *Enumerator) comEnumerate() ([]string, error) {
	return nil, errNoCOM
}

func (e *Enumerator) comInvoke(string) error {
	return errNoCOM
}
