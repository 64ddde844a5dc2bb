package main

import (
	"errors"
	"fmt"
	"os"

	vkiterrors "github.com/alexisbeaulieu97/vkit/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps failures to process exit codes: 2 for an unusable kit or
// script, 3 for a replay whose expectations failed, 1 otherwise.
func exitCode(err error) int {
	var parseErr *vkiterrors.ParseError
	var validationErr *vkiterrors.ValidationError
	var replayErr *vkiterrors.ReplayError

	switch {
	case err == nil:
		return 0
	case errors.As(err, &replayErr):
		return 3
	case errors.As(err, &parseErr), errors.As(err, &validationErr):
		return 2
	default:
		return 1
	}
}
