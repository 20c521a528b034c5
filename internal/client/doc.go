// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the session cache, the terminal UI and the refresh worker into a
// single process lifecycle: resume or sign in, run the main loop, and start
// over after a logout.
package client
