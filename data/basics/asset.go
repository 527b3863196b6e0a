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

package basics

import (
	"errors"
	"fmt"
)

// Asset is an amount tagged with the asset it is denominated in.
type Asset struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Amount  Amount  `codec:"amt"`
	AssetID AssetID `codec:"aid"`
}

// CoreAsset is a shortcut for an amount of the native asset.
func CoreAsset(a Amount) Asset {
	return Asset{Amount: a, AssetID: CoreAssetID}
}

// String implements fmt.Stringer
func (a Asset) String() string {
	return fmt.Sprintf("%d %v", a.Amount, a.AssetID)
}

// ErrInvalidPrice is returned when a price has a zero side or pairs an
// asset with itself.
var ErrInvalidPrice = errors.New("invalid price")

// Price is the ratio Base:Quote. A core exchange rate has Base in the
// asset being priced and Quote in the core asset.
type Price struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Base  Asset `codec:"b"`
	Quote Asset `codec:"q"`
}

// Validate checks that both sides are positive and of distinct assets.
func (p Price) Validate() error {
	if p.Base.Amount == 0 || p.Quote.Amount == 0 || p.Base.AssetID == p.Quote.AssetID {
		return ErrInvalidPrice
	}
	return nil
}

// Convert multiplies a by the price, rounding down. a must be
// denominated in either side of the price.
func (p Price) Convert(a Asset) (Asset, error) {
	if err := p.Validate(); err != nil {
		return Asset{}, err
	}
	var from, to Asset
	switch a.AssetID {
	case p.Base.AssetID:
		from, to = p.Base, p.Quote
	case p.Quote.AssetID:
		from, to = p.Quote, p.Base
	default:
		return Asset{}, fmt.Errorf("cannot convert %v with price %v/%v", a, p.Base, p.Quote)
	}
	res, overflowed := Muldiv(a.Amount, to.Amount, uint64(from.Amount))
	if overflowed {
		return Asset{}, fmt.Errorf("overflow converting %v with price %v/%v", a, p.Base, p.Quote)
	}
	return Asset{Amount: res, AssetID: to.AssetID}, nil
}
