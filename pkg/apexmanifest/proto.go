// SPDX-License-Identifier: MPL-2.0

package apexmanifest

import (
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the ApexManifest protobuf message.
const (
	fieldName        protowire.Number = 1
	fieldVersion     protowire.Number = 2
	fieldVersionName protowire.Number = 3
)

// ProtoDecoder decodes the protobuf wire encoding of an APEX manifest.
type ProtoDecoder struct{}

// Decode implements Decoder.
func (ProtoDecoder) Decode(data []byte, filename string) (*Manifest, error) {
	if int64(len(data)) > MaxFileSize {
		return nil, malformed(filename, "file size %d bytes exceeds maximum %d bytes", len(data), MaxFileSize)
	}

	var m Manifest
	b := data
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, malformed(filename, "bad field tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case fieldName, fieldVersionName:
			if typ != protowire.BytesType {
				return nil, malformed(filename, "field %d: expected string, got wire type %d", num, typ)
			}
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, malformed(filename, "field %d: %w", num, protowire.ParseError(n))
			}
			if !utf8.Valid(v) {
				return nil, malformed(filename, "field %d: string is not valid UTF-8", num)
			}
			if num == fieldName {
				m.Name = string(v)
			} else {
				m.VersionName = string(v)
			}
			b = b[n:]
		case fieldVersion:
			if typ != protowire.VarintType {
				return nil, malformed(filename, "field %d: expected int64, got wire type %d", num, typ)
			}
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, malformed(filename, "field %d: %w", num, protowire.ParseError(n))
			}
			m.Version = int64(v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, malformed(filename, "field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if m.Name == "" {
		return nil, malformed(filename, "name is missing")
	}
	return &m, nil
}

// MarshalProto encodes m in the protobuf wire format read by ProtoDecoder.
// Zero-valued fields are omitted, as proto3 does.
func (m *Manifest) MarshalProto() []byte {
	var b []byte
	if m.Name != "" {
		b = protowire.AppendTag(b, fieldName, protowire.BytesType)
		b = protowire.AppendString(b, m.Name)
	}
	if m.Version != 0 {
		b = protowire.AppendTag(b, fieldVersion, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.Version))
	}
	if m.VersionName != "" {
		b = protowire.AppendTag(b, fieldVersionName, protowire.BytesType)
		b = protowire.AppendString(b, m.VersionName)
	}
	return b
}
