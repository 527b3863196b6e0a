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

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/ledger/ledgercore"
)

var accountCmd = &cobra.Command{
	Use:   "account [uid]",
	Short: "Show an account with its fee statistics, or list all committed accounts",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		l := mustOpenLedger()
		defer l.Close()

		if len(args) == 0 {
			uids, err := l.CommittedAccounts()
			if err != nil {
				l.Close()
				reportErrorf(errorLookup, err)
			}
			for _, uid := range uids {
				reportInfof("%v", uid)
			}
			return
		}

		uid, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			l.Close()
			reportErrorf(errorBadID, args[0], err)
		}
		acct, st, err := l.Account(basics.AccountUID(uid))
		if err != nil {
			l.Close()
			reportErrorf(errorLookup, err)
		}
		printJSON(accountView{Account: acct, Statistics: st})
	},
}

var assetCmd = &cobra.Command{
	Use:   "asset [id]",
	Short: "Show an asset with its supply and fee pool",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		l := mustOpenLedger()
		defer l.Close()

		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			l.Close()
			reportErrorf(errorBadID, args[0], err)
		}
		asset, dyn, err := l.Asset(basics.AssetID(id))
		if err != nil {
			l.Close()
			reportErrorf(errorLookup, err)
		}
		printJSON(assetView{Asset: asset, Dynamic: dyn})
	},
}

type accountView struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Account    ledgercore.Account           `codec:"account"`
	Statistics ledgercore.AccountStatistics `codec:"statistics"`
}

type assetView struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Asset   ledgercore.Asset            `codec:"asset"`
	Dynamic ledgercore.AssetDynamicData `codec:"dynamic"`
}
