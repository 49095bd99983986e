// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytestruct

import "unicode/utf8"

const commandJSONVersion = 1

// CommandJSON is the UTF-8 JSON command payload (type code 1).
type CommandJSON struct {
	JSON string
}

func init() {
	Register(TypeCommandJSON, commandJSONVersion, decodeCommandJSON)
}

// TypeCode implements Payload.
func (CommandJSON) TypeCode() TypeCode { return TypeCommandJSON }

// PayloadVersion implements Payload.
func (CommandJSON) PayloadVersion() uint8 { return commandJSONVersion }

// EncodeBody implements Payload.
func (c CommandJSON) EncodeBody() ([]byte, error) {
	if !utf8.ValidString(c.JSON) {
		return nil, ErrBadUTF8
	}
	return []byte(c.JSON), nil
}

func decodeCommandJSON(body []byte, _ uint8) (Payload, error) {
	if !utf8.Valid(body) {
		return nil, ErrBadUTF8
	}
	return CommandJSON{JSON: string(body)}, nil
}
