package assert

import "github.com/EiraChris/Mirror/merror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(merror.New(message, args...))
	}
}
