// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-yoyow
//
// go-yoyow is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-yoyow is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-yoyow.  If not, see <https://www.gnu.org/licenses/>.

package main

const (
	errorOpenLedger      = "Cannot open ledger: %v"
	errorReadGenesis     = "Cannot read genesis %s: %v"
	errorReadInput       = "Cannot read %s: %v"
	errorApply           = "Transaction rejected: %v"
	errorCommit          = "Cannot commit ledger: %v"
	errorBadID           = "Invalid id %q: %v"
	errorLookup          = "Lookup failed: %v"
	infoInitialized      = "Initialized ledger in %s with protocol %s"
	infoApplied          = "Applied %d operations"
	infoDryRun           = "Dry run: %d operations would be applied"
	infoGenesisDiscarded = "Ledger already initialized, genesis ignored"
)
