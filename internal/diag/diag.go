package diag

import (
	"fmt"
	"log"
	"sync"
)

// Diag collects warnings without repeating them. Strategy chains retry on
// every menu open, and a broken environment would otherwise log the same
// failure each time.
type Diag struct {
	mu     sync.Mutex
	warned map[string]bool
	Logger *log.Logger
}

func New() *Diag {
	return &Diag{warned: map[string]bool{}}
}

// WarnOnce logs the formatted message the first time key is seen.
func (d *Diag) WarnOnce(key, format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.warned[key] {
		return
	}
	d.warned[key] = true
	d.printf("warning: "+format, args...)
}

func (d *Diag) Warnf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.printf("warning: "+format, args...)
}

func (d *Diag) Infof(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.printf(format, args...)
}

func (d *Diag) printf(format string, args ...interface{}) {
	if d.Logger != nil {
		d.Logger.Output(3, fmt.Sprintf(format, args...))
		return
	}
	log.Printf(format, args...)
}

// Warned reports whether key has already been logged via WarnOnce.
func (d *Diag) Warned(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.warned[key]
}
