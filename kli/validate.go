package kli

import "fmt"

// checkMandatory reports every mandatory option the parse left undefined, in
// declaration order. A defined help option suspends the check so that
// "prog --help" works without the required options.
func (s *session) checkMandatory(options []Option) {
	for _, opt := range options {
		if h, ok := opt.(*Help); ok && h.Defined() {
			return
		}
	}

	for _, opt := range options {
		if s.aborted() {
			return
		}
		if opt.Mandatory() && !opt.Defined() {
			s.fail(ErrorTypeMissingRequired, opt.Name(), fmt.Sprintf("Option '%s' must be defined.", opt.Name()))
		}
	}
}
