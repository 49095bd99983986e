// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortical

// familyEntry is one row of the declarative sensor/motor family table
// (spec.md §9: "derive the catalogue from a single declarative table
// ... and generate the variants mechanically"). Each entry names the
// three-character wire code, a human-readable name used for generated
// Go identifiers (catalogue_gen.go), and whether the code is a vision
// family, for which case is load-bearing (lowercase initial =
// grayscale, uppercase initial = color).
type familyEntry struct {
	Code   string
	Name   string
	Vision bool
}

// sensorFamilies is the closed, ordered catalogue of sensor (input)
// families, taken from spec.md §6. Vision families appear twice: once
// with a lowercase leading character (grayscale) and once with an
// uppercase one (color) — both rows share a human name and both carry
// Vision: true, so only the exact casing of Code distinguishes them.
var sensorFamilies = []familyEntry{
	{Code: "inf", Name: "InfraredProximity"},
	{Code: "iif", Name: "InfraredIntensity"},
	{Code: "pro", Name: "Proximity"},
	{Code: "gpd", Name: "GyroPositionDelta"},
	{Code: "gpa", Name: "GyroPositionAbsolute"},
	{Code: "acc", Name: "Accelerometer"},
	{Code: "gyr", Name: "Gyroscope"},
	{Code: "eul", Name: "EulerAngle"},
	{Code: "sho", Name: "Shock"},
	{Code: "bat", Name: "Battery"},
	{Code: "com", Name: "Compass"},
	{Code: "vcc", Name: "VisionCenterCenter", Vision: true},
	{Code: "vtl", Name: "VisionTopLeft", Vision: true},
	{Code: "vtm", Name: "VisionTopMiddle", Vision: true},
	{Code: "vtr", Name: "VisionTopRight", Vision: true},
	{Code: "vml", Name: "VisionMiddleLeft", Vision: true},
	{Code: "vmr", Name: "VisionMiddleRight", Vision: true},
	{Code: "vbl", Name: "VisionBottomLeft", Vision: true},
	{Code: "vbm", Name: "VisionBottomMiddle", Vision: true},
	{Code: "vbr", Name: "VisionBottomRight", Vision: true},
	{Code: "Vcc", Name: "VisionCenterCenter", Vision: true},
	{Code: "Vtl", Name: "VisionTopLeft", Vision: true},
	{Code: "Vtm", Name: "VisionTopMiddle", Vision: true},
	{Code: "Vtr", Name: "VisionTopRight", Vision: true},
	{Code: "Vml", Name: "VisionMiddleLeft", Vision: true},
	{Code: "Vmr", Name: "VisionMiddleRight", Vision: true},
	{Code: "Vbl", Name: "VisionBottomLeft", Vision: true},
	{Code: "Vbm", Name: "VisionBottomMiddle", Vision: true},
	{Code: "Vbr", Name: "VisionBottomRight", Vision: true},
	{Code: "mis", Name: "Miscellaneous"},
	{Code: "spo", Name: "ServoPosition"},
	{Code: "smo", Name: "ServoMotion"},
	{Code: "idt", Name: "Ident"},
	{Code: "pre", Name: "Pressure"},
	{Code: "lid", Name: "Lidar"},
	{Code: "ear", Name: "Microphone"},
}

// motorFamilies is the closed, ordered catalogue of motor (output)
// families, taken from spec.md §6.
var motorFamilies = []familyEntry{
	{Code: "mot", Name: "Motor"},
	{Code: "spo", Name: "ServoPosition"},
	{Code: "smo", Name: "ServoMotion"},
	{Code: "mcl", Name: "MotorControl"},
	{Code: "bat", Name: "Battery"},
}

// coreIdentifiers is the closed catalogue of known static core ('_')
// identifiers. spec.md §3 gives "___pwr" as an example; the remaining
// entries round out the small set of whole-system core areas a core
// discriminator may legitimately name.
var coreIdentifiers = []familyEntry{
	{Code: "___pwr", Name: "Power"},
	{Code: "___dmt", Name: "DeathDetection"},
	{Code: "___con", Name: "Connectome"},
}
