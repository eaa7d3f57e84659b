package main

import "path/filepath"

// Archive layout: 2 magic bytes, a format version, a 16-bit little-endian
// filename length, the filename, then the compressed frame. Files without
// the magic are treated as headerless legacy frames.
const formatVersion = 2

var magic = [2]byte{'K', 'C'}

// addHeader prepends the archive header carrying the original basename.
func addHeader(compressed []byte, originalPath string) []byte {
	name := filepath.Base(originalPath)
	if len(name) > 65535 {
		name = name[:65535]
	}

	out := make([]byte, 0, 5+len(name)+len(compressed))
	out = append(out, magic[0], magic[1], formatVersion)
	out = append(out, byte(len(name)), byte(len(name)>>8))
	out = append(out, name...)

	return append(out, compressed...)
}

// parseHeader returns the embedded filename and the offset of the compressed
// frame. A missing or unknown header yields an empty name and offset 0.
func parseHeader(data []byte) (string, int) {
	if len(data) < 5 || data[0] != magic[0] || data[1] != magic[1] {
		return "", 0
	}
	if data[2] != formatVersion {
		return "", 0
	}

	nameLen := int(data[3]) | int(data[4])<<8
	if len(data) < 5+nameLen {
		return "", 0
	}

	return string(data[5 : 5+nameLen]), 5 + nameLen
}
