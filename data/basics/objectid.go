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
	"fmt"
)

// Space partitions the object id namespace.
type Space uint8

const (
	// RelativeSpace ids point at the result of an earlier operation in
	// the same transaction. The instance is the operation index.
	RelativeSpace Space = 0
	// ProtocolSpace holds objects created by operations.
	ProtocolSpace Space = 1
	// ImplementationSpace holds bookkeeping objects maintained by the ledger.
	ImplementationSpace Space = 2
)

// ObjectType is the kind of object inside a Space.
type ObjectType uint8

// Protocol and implementation object types.
const (
	NullObjectType ObjectType = iota
	AccountObjectType
	AssetObjectType
	AccountStatisticsObjectType
	AssetDynamicDataObjectType
	FBAAccumulatorObjectType
)

// ObjectID is a (space, type, instance) triple.
type ObjectID struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Space    Space      `codec:"s"`
	Type     ObjectType `codec:"t"`
	Instance uint64     `codec:"i"`
}

// RelativeID refers to the object created by operation opIndex of the
// current transaction. RelativeID(0) is the zero ObjectID, so an unset
// reference means the object created by the first operation.
func RelativeID(opIndex uint64) ObjectID {
	return ObjectID{Space: RelativeSpace, Instance: opIndex}
}

// AssetObjectID is the protocol id of an asset.
func AssetObjectID(id AssetID) ObjectID {
	return ObjectID{Space: ProtocolSpace, Type: AssetObjectType, Instance: uint64(id)}
}

// AccountObjectID is the protocol id of an account.
func AccountObjectID(uid AccountUID) ObjectID {
	return ObjectID{Space: ProtocolSpace, Type: AccountObjectType, Instance: uint64(uid)}
}

// IsRelative reports whether id must be resolved against the current
// transaction before use.
func (id ObjectID) IsRelative() bool {
	return id.Space == RelativeSpace
}

// IsZero reports whether id is the zero value.
func (id ObjectID) IsZero() bool {
	return id.Space == 0 && id.Type == 0 && id.Instance == 0
}

// AsAssetID returns the asset id if id is a protocol asset object.
func (id ObjectID) AsAssetID() (AssetID, bool) {
	if id.Space != ProtocolSpace || id.Type != AssetObjectType {
		return 0, false
	}
	return AssetID(id.Instance), true
}

// String renders id as space.type.instance
func (id ObjectID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Space, id.Type, id.Instance)
}
