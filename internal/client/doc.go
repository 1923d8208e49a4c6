// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the user service.
//
// Each command maps onto one [adapter.UserAPI] call and prints the result as
// indented JSON.
package client
