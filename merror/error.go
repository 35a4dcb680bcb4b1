package merror

import "fmt"

type MirrorError struct {
	Err string
}

func New(format string, args ...interface{}) *MirrorError {
	return &MirrorError{Err: fmt.Sprintf(format, args...)}
}

func (e *MirrorError) Error() string {
	return e.Err
}
