package kli

// Reporter receives parse diagnostics. *kliio.Logger satisfies it.
type Reporter interface {
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
}

// NopReporter discards all diagnostics
type NopReporter struct{}

func (NopReporter) Info(string, ...any)    {}
func (NopReporter) Warning(string, ...any) {}
func (NopReporter) Error(string, ...any)   {}
