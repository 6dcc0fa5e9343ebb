//go:build tools
// +build tools

// Package tools pins code-generation tool versions in go.mod so that
// 'go install' resolves the same enumer for everyone.
package tools

import (
	_ "github.com/dmarkham/enumer"
)
