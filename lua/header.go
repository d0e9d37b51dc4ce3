package lua

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"pylua/parser"
)

// headerLines returns the generator identification header
func (c Config) headerLines(block []parser.Stmt) []string {
	lines := []string{
		fmt.Sprintf("-- Generated by %s %s (%s)", GeneratorName, c.Version, c.ProjectURL),
	}
	if c.Digest {
		lines = append(lines, "-- source digest: sha3-256:"+Digest(block))
	}
	return append(lines, "")
}

// Digest fingerprints a block by hashing its tree dump
func Digest(block []parser.Stmt) string {
	sum := sha3.Sum256([]byte(parser.DumpBlock(block)))
	return hex.EncodeToString(sum[:])
}
