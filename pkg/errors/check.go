package errors

// Check returns an ErrCodeInvalidArgument error carrying the formatted
// message when ok is false, and nil otherwise.
//
// It is the library's precondition guard: generators run a sequence of
// checks up front and return the first failure instead of producing a
// malformed graph.
//
//	if err := errors.Check(n >= 4, "a halin graph needs at least 4 nodes, got %d", n); err != nil {
//	    return nil, err
//	}
func Check(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return New(ErrCodeInvalidArgument, format, args...)
}

// First returns the first non-nil error in errs.
// It lets callers evaluate a batch of [Check] calls in order.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
