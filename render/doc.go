// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retree

// Package render serializes retree match trees and rule sets for humans and tools.
package render
