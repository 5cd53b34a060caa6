package span

// IntervalError reports an invalid interval or an illegal merge.
type IntervalError struct {
	Msg string
}

func (e *IntervalError) Error() string {
	return e.Msg
}

func newIntervalError(msg string) *IntervalError {
	return &IntervalError{Msg: msg}
}
