package chart

import (
	"errors"
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrInsufficientData     = errors.New("insufficient data")
	ErrInvalidConfiguration = fmt.Errorf("invalid configuration: %w", commerr.ErrInvalidArgument)
)
