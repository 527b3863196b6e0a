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

package ledgercore

import (
	"fmt"

	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/protocol"
)

// FeeReason says which half of the required fee pair was not met.
type FeeReason string

const (
	// FeeTotal means the fee paid is below the total required.
	FeeTotal FeeReason = "total"
	// FeeReal means balance plus prepaid is below the real-fee floor.
	FeeReal FeeReason = "real"
)

// InsufficientFeeError is returned when the fee paid does not meet the
// required fee pair.
type InsufficientFeeError struct {
	Reason      FeeReason
	Required    basics.Amount
	Provided    basics.Amount
	FromBalance basics.Amount
	FromPrepaid basics.Amount
}

// Error satisfies builtin interface `error`
func (err InsufficientFeeError) Error() string {
	if err.Reason == FeeReal {
		return fmt.Sprintf("Insufficient Real Fee Paid: need %s, provided %s from balance and %s from prepaid",
			basics.FormatAmount(err.Required, basics.CorePrecision),
			basics.FormatAmount(err.FromBalance, basics.CorePrecision),
			basics.FormatAmount(err.FromPrepaid, basics.CorePrecision))
	}
	return fmt.Sprintf("Insufficient Total Fee Paid: need %s, provided %s",
		basics.FormatAmount(err.Required, basics.CorePrecision),
		basics.FormatAmount(err.Provided, basics.CorePrecision))
}

// ObjectNotFoundError is returned when a referenced object does not exist.
type ObjectNotFoundError struct {
	Kind string
	ID   basics.ObjectID
}

// Error satisfies builtin interface `error`
func (err ObjectNotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", err.Kind, err.ID)
}

// RelativeIDError is returned when a relative id points past the
// operations applied so far, or at one that created nothing.
type RelativeIDError struct {
	ID      basics.ObjectID
	Created int
}

// Error satisfies builtin interface `error`
func (err RelativeIDError) Error() string {
	return fmt.Sprintf("relative id %v does not name an object created by the %d operations applied so far", err.ID, err.Created)
}

// InsufficientFundsError is returned when an account cannot fund an
// amount from one of its sources. Required and Available are displayed
// with Precision decimal places.
type InsufficientFundsError struct {
	Account   basics.AccountUID
	Source    string
	Required  basics.Amount
	Available basics.Amount
	Precision uint8
}

// Error satisfies builtin interface `error`
func (err InsufficientFundsError) Error() string {
	return fmt.Sprintf("account %v has insufficient %s: need %s, available %s", err.Account, err.Source,
		basics.FormatAmount(err.Required, err.Precision),
		basics.FormatAmount(err.Available, err.Precision))
}

// CoreShortfall reports a shortfall of a core-denominated source such as
// prepaid or csaf.
func CoreShortfall(uid basics.AccountUID, source string, required, available basics.Amount) InsufficientFundsError {
	return InsufficientFundsError{Account: uid, Source: source, Required: required, Available: available, Precision: basics.CorePrecision}
}

// BalanceShortfall reports that uid holds less of a than required.
func (a Asset) BalanceShortfall(uid basics.AccountUID, required, available basics.Amount) InsufficientFundsError {
	return InsufficientFundsError{Account: uid, Source: "balance of " + a.Symbol, Required: required, Available: available, Precision: a.Precision}
}

// FeeOptionsError is returned for explicit fee options the ledger
// cannot honor.
type FeeOptionsError struct {
	Msg string
}

// Error satisfies builtin interface `error`
func (err FeeOptionsError) Error() string {
	return "invalid fee options: " + err.Msg
}

// Phase names the step of the evaluator lifecycle an error came from.
type Phase string

const (
	// PhaseEvaluate failures leave the ledger untouched.
	PhaseEvaluate Phase = "evaluate"
	// PhaseApply failures abort the enclosing transaction.
	PhaseApply Phase = "apply"
)

// OperationError wraps a failure of an operation's own logic.
type OperationError struct {
	Op    protocol.OpType
	Phase Phase
	Err   error
}

// Error satisfies builtin interface `error`
func (err OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", err.Op, err.Phase, err.Err)
}

// Unwrap exposes the underlying cause.
func (err OperationError) Unwrap() error {
	return err.Err
}
