// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Demo builds curio, seeds a scratch directory with sample records, and
// runs the sample commands from both the text files and SQLite.
func Demo() error {
	mg.Deps(Build)

	dir, err := os.MkdirTemp("", "curio-demo-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	bin, err := filepath.Abs(filepath.Join(binaryDir, binaryName))
	if err != nil {
		return err
	}
	env := map[string]string{
		"CURIO_CONFIG_DIR": filepath.Join(dir, "config"),
		"CURIO_DATA_DIR":   filepath.Join(dir, "data"),
	}
	curio := func(args ...string) error {
		return sh.RunWithV(env, bin, args...)
	}

	if err := curio("init", "--sample"); err != nil {
		return err
	}
	fmt.Println("== text files")
	if err := curio("run"); err != nil {
		return err
	}
	if err := curio("import"); err != nil {
		return err
	}
	fmt.Println("== sqlite")
	env["CURIO_SOURCE"] = "sqlite"
	return curio("run")
}
