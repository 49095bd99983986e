// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file plays the role the teacher's own //go:generate core
// generate -add-types convention plays for its enums: it derives Go-
// facing identifiers mechanically from the active catalogue's Name
// field, rather than hand-writing a constant per family (spec.md §9).

package cortical

import "github.com/iancoleman/strcase"

// ConstantName returns the PascalCase Go identifier a codegen pass
// would emit for a known family or core code under the given
// discriminator ('i', 'o', or '_'), and false if the code is not in the
// catalogue. It reads the process-wide active catalogue, so a
// runtimecfg relabel (cortical.RenameLabels) changes what this returns.
func ConstantName(discriminator byte, code string) (string, bool) {
	var e familyEntry
	var ok bool
	switch discriminator {
	case 'i':
		e, ok = current().sensor(code)
	case 'o':
		e, ok = current().motor(code)
	case '_':
		e, ok = current().core(code)
	}
	if !ok {
		return "", false
	}
	return strcase.ToCamel(e.Name), true
}
