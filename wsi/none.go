// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"errors"
)

var errMissing = errors.New("wsi: no wsi implementation")

func init() { initNone() }

func initNone() {
	newWindow = newWindowNone
	dispatch = dispatchNone
	run = runNone
	setAppName = setAppNameNone
	platform = None
}

func newWindowNone(int, int, string) (Window, error) {
	return nil, errMissing
}

func runNone(func() error) error { return errMissing }
func dispatchNone()               {}
func setAppNameNone(string)       {}
