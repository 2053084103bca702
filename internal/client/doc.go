// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

// Package client implements the headless sync client runtime.
//
// It wires the server adapter, local storage, sync services, and the
// background scheduler into a single process lifecycle with signal-driven
// shutdown.
package client
