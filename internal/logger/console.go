package logger

// Console classifies user-facing messages by level and prints them with the
// package's colored printers. It satisfies installer.Reporter.
type Console struct{}

// Infof prints a progress message.
func (Console) Infof(format string, a ...any) { Info(format+"\n", a...) }

// Successf prints a completed-step message.
func (Console) Successf(format string, a ...any) { Success(format+"\n", a...) }

// Warnf prints a non-fatal problem.
func (Console) Warnf(format string, a ...any) { Warn(format+"\n", a...) }

// Errorf prints the message of a failed step.
func (Console) Errorf(format string, a ...any) { Error(format+"\n", a...) }
