// Package testutil provides utilities for testing markbind components.
//
// Key components:
//   - TestEnvironment: temp workspace with isolated XDG config and state dirs
//   - File helpers: create, read and assert on files under a test dir
//   - MockDocument: a dom.Document whose Query is scripted per test
//
// Usage guidelines:
//   - Define documents and values inline, not in external fixture files
//   - Each test gets its own environment; nothing is shared between tests
package testutil
