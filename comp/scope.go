package comp

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// bindingDependent is the scope-facing view of an evaluating binding
// provider.
type bindingDependent interface {
	// observe subscribes the evaluating binding to a property it read.
	observe(dep observedProperty)
	// ownerNode identifies the property owning the binding, so self-reads
	// are not recorded as dependencies.
	ownerNode() observedProperty
	// removeSelf detaches the binding from its owner; invoked by a dying
	// dependency property.
	removeSelf()
}

// observedProperty is the provider-facing view of a property read inside a
// binding expression.
type observedProperty interface {
	changedSignal() *ChangedSignal
	addDependent(d bindingDependent)
	removeDependent(d bindingDependent)
}

// The binding scope marks which binding, if any, is evaluating on the
// current goroutine. Go has no thread-local storage, so the scope lives in a
// map keyed by goroutine id; each entry is written only by its own
// goroutine.
var (
	scopeMu sync.Mutex
	scopes  = map[uint64]bindingDependent{}
)

var goroutinePrefix = []byte("goroutine ")

// goroutineID extracts the current goroutine's id from the runtime stack
// header.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	head := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(head, ' '); i >= 0 {
		head = head[:i]
	}
	id, _ := strconv.ParseUint(string(head), 10, 64)
	return id
}

// currentScope returns the binding evaluating on this goroutine, or nil.
func currentScope() bindingDependent {
	gid := goroutineID()
	scopeMu.Lock()
	defer scopeMu.Unlock()
	return scopes[gid]
}

// enterScope installs b as the current binding and returns the restore
// function. Scopes save and restore the previous value, so evaluations that
// reach other bindings nest correctly.
func enterScope(b bindingDependent) (restore func()) {
	gid := goroutineID()
	scopeMu.Lock()
	prev, had := scopes[gid]
	scopes[gid] = b
	scopeMu.Unlock()
	return func() {
		scopeMu.Lock()
		if had {
			scopes[gid] = prev
		} else {
			delete(scopes, gid)
		}
		scopeMu.Unlock()
	}
}
