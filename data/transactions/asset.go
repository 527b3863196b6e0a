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

package transactions

import (
	"fmt"

	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/data/basics"
	"github.com/yoyow-org/go-yoyow/protocol"
)

// AssetCreateOp creates a user issued asset. The exchange rate is
// RateAsset units of the new asset per RateCore core units, and prices
// fees paid in the new asset.
type AssetCreateOp struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Fee       FeeType           `codec:"fee"`
	Issuer    basics.AccountUID `codec:"issuer"`
	Symbol    string            `codec:"sym"`
	Precision uint8             `codec:"prec"`
	MaxSupply basics.Amount     `codec:"max"`
	RateAsset basics.Amount     `codec:"ra"`
	RateCore  basics.Amount     `codec:"rc"`
}

// Type implements Operation
func (op *AssetCreateOp) Type() protocol.OpType { return protocol.AssetCreateOp }

// FeePayer implements Operation
func (op *AssetCreateOp) FeePayer() basics.AccountUID { return op.Issuer }

// DeclaredFee implements Operation
func (op *AssetCreateOp) DeclaredFee() FeeType { return op.Fee }

// CalculateFee charges the base fee and the premium for short symbols.
func (op *AssetCreateOp) CalculateFee(p config.FeeParameters) basics.Amount {
	fee := sumFee(p.Fee, dataFee(len(op.Symbol), p.PricePerKByte))
	if len(op.Symbol) < shortNameLength {
		fee = sumFee(uint64(fee), p.Premium)
	}
	return fee
}

// WellFormed implements Operation
func (op *AssetCreateOp) WellFormed(params config.ConsensusParams) error {
	if err := op.Fee.WellFormed(); err != nil {
		return err
	}
	if len(op.Symbol) < params.MinAssetSymbolLength || len(op.Symbol) > params.MaxAssetSymbolLength {
		return fmt.Errorf("asset symbol %q must be %d to %d bytes", op.Symbol, params.MinAssetSymbolLength, params.MaxAssetSymbolLength)
	}
	for _, c := range op.Symbol {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '.' {
			return fmt.Errorf("asset symbol %q: invalid character %q", op.Symbol, c)
		}
	}
	if op.Precision > 12 {
		return fmt.Errorf("asset precision %d too large", op.Precision)
	}
	if op.MaxSupply == 0 {
		return fmt.Errorf("asset %s has zero max supply", op.Symbol)
	}
	if op.RateAsset == 0 || op.RateCore == 0 {
		return fmt.Errorf("asset %s has an empty core exchange rate", op.Symbol)
	}
	return nil
}

// ExchangeRate is the core exchange rate of the asset once it has an id.
func (op *AssetCreateOp) ExchangeRate(id basics.AssetID) basics.Price {
	return basics.Price{
		Base:  basics.Asset{Amount: op.RateAsset, AssetID: id},
		Quote: basics.CoreAsset(op.RateCore),
	}
}

// Visit implements Operation
func (op *AssetCreateOp) Visit(v Visitor) error { return v.AssetCreate(op) }

func (*AssetCreateOp) isOperation() {}

// AssetIssueOp mints new supply of an asset to an account. Asset may be a
// relative id naming an asset created earlier in the same transaction.
type AssetIssueOp struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Fee     FeeType           `codec:"fee"`
	Issuer  basics.AccountUID `codec:"issuer"`
	Asset   basics.ObjectID   `codec:"asset"`
	Amount  basics.Amount     `codec:"amt"`
	IssueTo basics.AccountUID `codec:"to"`
}

// Type implements Operation
func (op *AssetIssueOp) Type() protocol.OpType { return protocol.AssetIssueOp }

// FeePayer implements Operation
func (op *AssetIssueOp) FeePayer() basics.AccountUID { return op.Issuer }

// DeclaredFee implements Operation
func (op *AssetIssueOp) DeclaredFee() FeeType { return op.Fee }

// CalculateFee implements Operation
func (op *AssetIssueOp) CalculateFee(p config.FeeParameters) basics.Amount {
	return basics.Amount(p.Fee)
}

// WellFormed implements Operation
func (op *AssetIssueOp) WellFormed(params config.ConsensusParams) error {
	if err := op.Fee.WellFormed(); err != nil {
		return err
	}
	if op.Amount == 0 {
		return fmt.Errorf("issue of zero amount")
	}
	return checkAssetRef(op.Asset)
}

func (op *AssetIssueOp) references() []basics.ObjectID { return []basics.ObjectID{op.Asset} }

// Visit implements Operation
func (op *AssetIssueOp) Visit(v Visitor) error { return v.AssetIssue(op) }

func (*AssetIssueOp) isOperation() {}

// AssetFundFeePoolOp moves core balance into an asset's fee pool, which
// backs fees paid in that asset.
type AssetFundFeePoolOp struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Fee    FeeType           `codec:"fee"`
	From   basics.AccountUID `codec:"from"`
	Asset  basics.ObjectID   `codec:"asset"`
	Amount basics.Amount     `codec:"amt"`
}

// Type implements Operation
func (op *AssetFundFeePoolOp) Type() protocol.OpType { return protocol.AssetFundFeePoolOp }

// FeePayer implements Operation
func (op *AssetFundFeePoolOp) FeePayer() basics.AccountUID { return op.From }

// DeclaredFee implements Operation
func (op *AssetFundFeePoolOp) DeclaredFee() FeeType { return op.Fee }

// CalculateFee implements Operation
func (op *AssetFundFeePoolOp) CalculateFee(p config.FeeParameters) basics.Amount {
	return basics.Amount(p.Fee)
}

// WellFormed implements Operation
func (op *AssetFundFeePoolOp) WellFormed(params config.ConsensusParams) error {
	if err := op.Fee.WellFormed(); err != nil {
		return err
	}
	if op.Amount == 0 {
		return fmt.Errorf("fee pool funding of zero amount")
	}
	if err := checkAssetRef(op.Asset); err != nil {
		return err
	}
	if id, ok := op.Asset.AsAssetID(); ok && id.IsCore() {
		return fmt.Errorf("core asset has no fee pool")
	}
	return nil
}

func (op *AssetFundFeePoolOp) references() []basics.ObjectID { return []basics.ObjectID{op.Asset} }

// Visit implements Operation
func (op *AssetFundFeePoolOp) Visit(v Visitor) error { return v.AssetFundFeePool(op) }

func (*AssetFundFeePoolOp) isOperation() {}

// checkAssetRef accepts a relative id or a protocol asset id.
func checkAssetRef(id basics.ObjectID) error {
	if id.IsRelative() {
		return nil
	}
	if _, ok := id.AsAssetID(); !ok {
		return fmt.Errorf("object %v is not an asset", id)
	}
	return nil
}
