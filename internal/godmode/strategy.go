package godmode

import (
	"github.com/mwhelan/accessmenu/internal/diag"
)

// enumStrategy is one way of discovering the settings items. Strategies are
// tried in order; the first one that yields items wins. A strategy error or
// an empty result both fall through to the next strategy — some environments
// run the automation surface fine but return nothing useful.
type enumStrategy struct {
	name string
	run  func() ([]string, error)
}

// invokeStrategy is one way of turning a chosen item name back into a live
// action. Success is the strategy reporting nil; any error falls through.
type invokeStrategy struct {
	name string
	run  func(item string) error
}

// runEnumChain returns the first nonempty result and the winning strategy
// name. Exhausting the chain yields an empty list, never an error: the UI
// shows a placeholder instead.
func runEnumChain(strategies []enumStrategy, d *diag.Diag) ([]string, string) {
	for _, s := range strategies {
		items, err := s.run()
		if err != nil {
			if d != nil {
				d.WarnOnce("godmode-enum-"+s.name, "settings enumeration via %s failed: %v", s.name, err)
			}
			continue
		}
		if len(items) == 0 {
			continue
		}
		return items, s.name
	}
	return nil, ""
}

// runInvokeChain reports whether any strategy accepted the item. Exhausting
// the chain is a silent no-op: the underlying action may have partially run
// through a side channel, so no error surfaces to the user.
func runInvokeChain(item string, strategies []invokeStrategy, d *diag.Diag) bool {
	for _, s := range strategies {
		if err := s.run(item); err != nil {
			if d != nil {
				d.Warnf("settings invoke via %s failed for %q: %v", s.name, item, err)
			}
			continue
		}
		return true
	}
	return false
}
