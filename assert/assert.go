package assert

import "github.com/strafesim/strafesim/serror"

// IsTrue panics if ok is false. It is reserved for host-integration contract
// violations that the simulation cannot recover from.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(serror.New(message, args...))
	}
}
