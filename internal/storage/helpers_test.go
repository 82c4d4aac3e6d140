package storage

import (
	"context"
	"errors"
	"time"
)

var errBackendDown = errors.New("backend down")

// failingBackend fails every operation
type failingBackend struct{}

func (failingBackend) Get(context.Context, string) (string, bool, error) {
	return "", false, errBackendDown
}

func (failingBackend) Set(context.Context, string, string, time.Duration) error {
	return errBackendDown
}

func (failingBackend) Delete(context.Context, string) error {
	return errBackendDown
}

func (failingBackend) Ping(context.Context) error {
	return errBackendDown
}
