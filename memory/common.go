package memory

import (
	"errors"
	"fmt"
	"log"
)

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrInaccessible  = errors.New("memory region inaccessible")
	ErrNoProcess     = errors.New("no such process")
	ErrUnsupported   = errors.New("process memory access not supported on this platform")
)

func Fatal(err error) error {
	if ViperGetBool("debug") {
		log.Printf("memory: %v\n", err)
	}
	return err
}

func Fatalf(format string, args ...any) error {
	return Fatal(fmt.Errorf(format, args...))
}
