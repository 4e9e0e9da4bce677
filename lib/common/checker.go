package common

type Checker interface {
	GetFuncs() []CheckerFunc
}

type CheckerDeferFunc func(int, Checker, error)

var DefaultDeferFunc CheckerDeferFunc = func(int, Checker, error) {}

type CheckerFunc func(Checker, ...interface{}) error

type DefaultChecker struct {
	Funcs []CheckerFunc
}

func (c *DefaultChecker) GetFuncs() []CheckerFunc {
	return c.Funcs
}

// CheckerStop stops the checker funcs without failing; the remaining funcs
// are skipped and the caller treats the run as finished.
type CheckerStop struct {
	Message string
}

func NewCheckerStop(message string) CheckerStop {
	return CheckerStop{Message: message}
}

func (c CheckerStop) Error() string {
	return c.Message
}

// IsCheckerStop returns the `CheckerStop` held by err, if any.
func IsCheckerStop(err error) (CheckerStop, bool) {
	stop, ok := err.(CheckerStop)
	return stop, ok
}

func RunChecker(checker Checker, deferFunc CheckerDeferFunc, args ...interface{}) error {
	if deferFunc == nil {
		deferFunc = DefaultDeferFunc
	}

	var err error
	for i, f := range checker.GetFuncs() {
		if err = f(checker, args...); err != nil {
			deferFunc(i, checker, err)
			return err
		}
		deferFunc(i, checker, err)
	}
	return nil
}
