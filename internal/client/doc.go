// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the auth service.
//
// Each invocation runs one subcommand (register, login, me or version)
// against the server through an [adapter.CredentialAdapter] and prints the
// result as JSON on its output writer.
package client
