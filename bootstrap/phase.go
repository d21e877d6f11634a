package bootstrap

import "fmt"

// Phase is the application lifecycle state. Transitions only move forward.
type Phase int

const (
	Uninitialized Phase = iota
	WindowReady
	InstanceReady
	Running
	ShuttingDown
	Terminated
)

var phaseNames = [...]string{
	Uninitialized: "Uninitialized",
	WindowReady:   "WindowReady",
	InstanceReady: "InstanceReady",
	Running:       "Running",
	ShuttingDown:  "ShuttingDown",
	Terminated:    "Terminated",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}
