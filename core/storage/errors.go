package storage

import "go.trai.ch/zerr"

var (
	// ErrNotFound is returned when the requested path does not exist.
	ErrNotFound = zerr.New("path not found")
	// ErrReadFailed is returned when a file cannot be read.
	ErrReadFailed = zerr.New("failed to read file")
	// ErrWriteFailed is returned when a file cannot be written.
	ErrWriteFailed = zerr.New("failed to write file")
	// ErrDecodeFailed is returned when a file does not hold a valid tree.
	ErrDecodeFailed = zerr.New("failed to decode tree")
	// ErrEncodeFailed is returned when a tree cannot be encoded.
	ErrEncodeFailed = zerr.New("failed to encode tree")
	// ErrListFailed is returned when a directory cannot be listed.
	ErrListFailed = zerr.New("failed to list directory")
)
