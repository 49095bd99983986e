// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runtimecfg loads the optional TOML overrides that relabel the
// cortical family catalogue, grounded on the teacher's econfig package
// (econfig/io.go, econfig/config.go). The core library is otherwise
// configuration-free (spec.md §6): this package only ever relabels the
// closed, compiled-in family table, it never adds or removes entries.
package runtimecfg

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/feagi/feagi-core-data/cortical"
)

// CatalogueOverride is the shape of an optional TOML file relabeling
// sensor, motor and core family names. Keys are wire codes (e.g. "pro",
// "mot", "___pwr"); values are the human-readable names to install in
// place of the compiled-in defaults.
type CatalogueOverride struct {
	Labels map[string]string `toml:"labels"`
}

// Default returns a CatalogueOverride with no overrides, mirroring
// econfig's field-tag-default convention (SetFromDefaults) for a type
// with no non-zero defaults to apply.
func Default() CatalogueOverride {
	return CatalogueOverride{Labels: map[string]string{}}
}

// Open reads a CatalogueOverride from file and installs it as the
// process-wide active cortical catalogue via cortical.SetCatalogue. A
// missing file is not an error — it leaves the compiled-in catalogue in
// place, since the override is optional (spec.md §6: "no CLI/environment
// required at the core level").
func Open(file string) error {
	fp, err := os.Open(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		log.Println(err)
		return err
	}
	defer fp.Close()
	return Read(bufio.NewReader(fp))
}

// Read loads a CatalogueOverride from reader and installs it.
func Read(reader io.Reader) error {
	b, err := io.ReadAll(reader)
	if err != nil {
		log.Println(err)
		return err
	}
	return ReadBytes(b)
}

// ReadBytes loads a CatalogueOverride from raw TOML bytes and installs
// it.
func ReadBytes(b []byte) error {
	cfg := Default()
	if err := toml.Unmarshal(b, &cfg); err != nil {
		log.Println(err)
		return err
	}
	Apply(cfg)
	return nil
}

// Apply installs cfg's labels as the active cortical catalogue.
func Apply(cfg CatalogueOverride) {
	cortical.SetCatalogue(cortical.RenameLabels(cfg.Labels))
}

// Reset reverts to the compiled-in catalogue, discarding any override
// installed by Open/Read/Apply. Mainly useful for tests.
func Reset() {
	cortical.SetCatalogue(nil)
}
