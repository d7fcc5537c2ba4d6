//go:build !cgo

package main

import (
	"context"
	"errors"
)

func runView(context.Context, *options, int) error {
	return errors.New("view requires cgo (build with CGO_ENABLED=1)")
}
