// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytestruct

import (
	"encoding/binary"
	"unicode/utf8"
)

const authenticationVersion = 1

// Authentication is the credential payload (type code 4). spec.md §6
// names the type code but never its body; original_source/ kept zero
// files for this repo, so the shape here is the minimal one a
// credential frame needs: a u32 length-prefixed UTF-8 token (see
// decodeUTF8Body), rejected with ErrBadUTF8 like a CommandJSON body.
type Authentication struct {
	Token string
}

func init() {
	Register(TypeAuthentication, authenticationVersion, decodeAuthentication)
}

func (Authentication) TypeCode() TypeCode { return TypeAuthentication }

func (Authentication) PayloadVersion() uint8 { return authenticationVersion }

func (a Authentication) EncodeBody() ([]byte, error) {
	if !utf8.ValidString(a.Token) {
		return nil, ErrBadUTF8
	}
	buf := make([]byte, 4+len(a.Token))
	binary.LittleEndian.PutUint32(buf, uint32(len(a.Token)))
	copy(buf[4:], a.Token)
	return buf, nil
}

func decodeAuthentication(body []byte, _ uint8) (Payload, error) {
	tok, err := decodeUTF8Body(body)
	if err != nil {
		return nil, err
	}
	return Authentication{Token: tok}, nil
}

// decodeUTF8Body reads a u32 length-prefixed UTF-8 string, the
// Authentication body shape. CommandJSON bodies carry no length prefix
// and are decoded by decodeCommandJSON instead.
func decodeUTF8Body(body []byte) (string, error) {
	if len(body) < 4 {
		return "", ErrTruncated
	}
	n := binary.LittleEndian.Uint32(body)
	if len(body) < 4+int(n) {
		return "", ErrTruncated
	}
	s := body[4 : 4+n]
	if !utf8.Valid(s) {
		return "", ErrBadUTF8
	}
	if len(body) != 4+int(n) {
		return "", ErrLengthMismatch
	}
	return string(s), nil
}
