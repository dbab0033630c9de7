//go:build windows

package godmode

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// The shell automation object is apartment-affine: it must be created and
// used from a single-threaded apartment, which cannot be the UI thread's.
// Each call therefore runs on its own locked OS thread and the caller waits
// on a response channel, bounded by the configured timeout. Only one call is
// in flight at a time by construction (the navigator calls sequentially).

type comResult struct {
	items []string
	err   error
}

func (e *Enumerator) comEnumerate() ([]string, error) {
	return e.comCall(func(folder *ole.IDispatch) ([]string, error) {
		items, err := folderItems(folder)
		if err != nil {
			return nil, err
		}
		defer items.Release()

		count, err := itemCount(items)
		if err != nil {
			return nil, err
		}
		var names []string
		for i := 0; i < count; i++ {
			item, err := itemAt(items, i)
			if err != nil {
				continue
			}
			if name, err := itemName(item); err == nil && name != "" {
				names = append(names, name)
			}
			item.Release()
		}
		return names, nil
	})
}

func (e *Enumerator) comInvoke(target string) error {
	_, err := e.comCall(func(folder *ole.IDispatch) ([]string, error) {
		items, err := folderItems(folder)
		if err != nil {
			return nil, err
		}
		defer items.Release()

		count, err := itemCount(items)
		if err != nil {
			return nil, err
		}
		for i := 0; i < count; i++ {
			item, err := itemAt(items, i)
			if err != nil {
				continue
			}
			name, err := itemName(item)
			if err == nil && strings.EqualFold(name, target) {
				_, err := oleutil.CallMethod(item, "InvokeVerb")
				item.Release()
				if err != nil {
					return nil, fmt.Errorf("invoke verb: %w", err)
				}
				return nil, nil
			}
			item.Release()
		}
		return nil, fmt.Errorf("item %q not found", target)
	})
	return err
}

// comCall runs fn against the settings namespace on a dedicated STA worker
// and waits for the response, up to the enumerator timeout. A hung automation
// call leaks the worker thread but not the caller.
func (e *Enumerator) comCall(fn func(folder *ole.IDispatch) ([]string, error)) ([]string, error) {
	ch := make(chan comResult, 1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer func() {
			if r := recover(); r != nil {
				ch <- comResult{err: fmt.Errorf("com worker panic: %v", r)}
			}
		}()
		ch <- staCall(fn)
	}()

	select {
	case r := <-ch:
		return r.items, r.err
	case <-time.After(e.timeout()):
		return nil, fmt.Errorf("com automation timed out after %s", e.timeout())
	}
}

func staCall(fn func(folder *ole.IDispatch) ([]string, error)) comResult {
	if err := ole.CoInitialize(0); err != nil {
		return comResult{err: fmt.Errorf("CoInitialize: %w", err)}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Shell.Application")
	if err != nil {
		return comResult{err: fmt.Errorf("Shell.Application: %w", err)}
	}
	defer unknown.Release()
	shellDisp, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return comResult{err: fmt.Errorf("IDispatch: %w", err)}
	}
	defer shellDisp.Release()

	folderV, err := oleutil.CallMethod(shellDisp, "NameSpace", godModeNamespace)
	if err != nil {
		return comResult{err: fmt.Errorf("NameSpace: %w", err)}
	}
	folder := folderV.ToIDispatch()
	if folder == nil {
		return comResult{err: fmt.Errorf("settings namespace unavailable")}
	}
	defer folder.Release()

	items, err := fn(folder)
	return comResult{items: items, err: err}
}

func folderItems(folder *ole.IDispatch) (*ole.IDispatch, error) {
	v, err := oleutil.CallMethod(folder, "Items")
	if err != nil {
		return nil, fmt.Errorf("Items: %w", err)
	}
	d := v.ToIDispatch()
	if d == nil {
		return nil, fmt.Errorf("Items: nil collection")
	}
	return d, nil
}

func itemCount(items *ole.IDispatch) (int, error) {
	v, err := oleutil.GetProperty(items, "Count")
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return int(v.Val), nil
}

func itemAt(items *ole.IDispatch, i int) (*ole.IDispatch, error) {
	v, err := oleutil.CallMethod(items, "Item", i)
	if err != nil {
		return nil, err
	}
	d := v.ToIDispatch()
	if d == nil {
		return nil, fmt.Errorf("Item(%d): nil", i)
	}
	return d, nil
}

func itemName(item *ole.IDispatch) (string, error) {
	v, err := oleutil.GetProperty(item, "Name")
	if err != nil {
		return "", err
	}
	return v.ToString(), nil
}
