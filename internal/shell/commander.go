package shell

import (
	"os/exec"
)

// Commander abstracts process spawning so callers can inject fakes in tests.
type Commander interface {
	// Run waits for the command to finish and returns its combined output.
	Run(name string, args ...string) ([]byte, error)
	// Output waits for the command to finish and returns stdout only.
	Output(name string, args ...string) ([]byte, error)
	// Start launches the command detached and returns without waiting.
	Start(name string, args ...string) error
}

type ExecCommander struct{}

func (e *ExecCommander) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	hideWindow(cmd)
	return cmd.CombinedOutput()
}

func (e *ExecCommander) Output(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	hideWindow(cmd)
	return cmd.Output()
}

func (e *ExecCommander) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	hideWindow(cmd)
	return cmd.Start()
}
