//go:build !linux

package engine

import (
	"context"

	appErr "lrungo/pkg/errors"
	"lrungo/sandbox/option"
	"lrungo/sandbox/result"
)

type stubEngine struct{}

func NewEngine(cfg Config) Engine {
	return &stubEngine{}
}

func (s *stubEngine) Available() bool {
	return false
}

func (s *stubEngine) Run(ctx context.Context, argv []string, opts *option.Set) (*result.Result, error) {
	return nil, appErr.New(appErr.NotAvailable).WithMessage("lrun is only supported on linux")
}
