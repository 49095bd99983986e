// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdata

// GroupingIndex disambiguates among cortical areas of the same
// sensor/motor family. Never interchangeable with ChannelIndex or
// DeviceIndex.
type GroupingIndex uint8

// ChannelIndex is a device slot local to one cortical area. Never
// interchangeable with GroupingIndex or DeviceIndex.
type ChannelIndex uint32

// DeviceIndex is local to the physical side of the system; many-to-one
// onto (cortical area, channel) for sensors. Never interchangeable with
// GroupingIndex or ChannelIndex.
type DeviceIndex uint32
