// SPDX-License-Identifier: MIT

// Package scenario loads the YAML documents the demonstration driver runs:
// a named target window with an optional start state.
//
// 🚀 File format:
//
//	name: pulse-demo        # required, shown in driver output
//	length: 8               # optional, defaults to len(target)
//	target: [4, 2, 0, 4]    # required, non-negative integers
//	start: [0, 0, 0, 0]     # optional prior state, non-negative
//
// ✨ Key features:
//   - one shared validator instance with struct-level window rules: the
//     length must cover target and start and fit the encoder bound
//   - Normalize derives length from the target before validation
//   - Parse for in-memory documents, Load for files
//
// ⚙️ Usage:
//
//	s, err := scenario.Load("pulse.yaml")
//	if err != nil {
//	  // unreadable file, malformed YAML, or validator field errors
//	}
//	f, err := closedform.PFunc(s.Start, closedform.Form{}, s.Target, s.Length)
//
// Errors: Load and Parse wrap the underlying cause — the os read error,
// the yaml.v3 parse error, or a validator.ValidationErrors listing every
// offending field and tag.
package scenario
