package async

// Outcome is the settled result of a single future: its value, or the
// error it failed with.
type Outcome[U any] struct {
	Value U
	Err   error
}

// AwaitAll waits for every future and returns their values in order.
// It fails fast: the first error encountered (in argument order) is
// returned alongside the results collected so far.
func AwaitAll[U any](futures ...*Future[U]) ([]U, error) {
	values := make([]U, len(futures))

	for i, f := range futures {
		value, err := f.Await()
		values[i] = value
		if err != nil {
			return values, err
		}
	}

	return values, nil
}

// AwaitAllSettled waits for every future and returns each one's outcome
// in argument order. Unlike AwaitAll, individual failures are collected
// rather than short-circuiting: the caller always observes every task's
// result.
func AwaitAllSettled[U any](futures ...*Future[U]) []Outcome[U] {
	outcomes := make([]Outcome[U], len(futures))

	for i, f := range futures {
		outcomes[i].Value, outcomes[i].Err = f.Await()
	}

	return outcomes
}
