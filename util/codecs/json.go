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

package codecs

import (
	"encoding/json"
	"io"
	"os"
)

// NewFormattedJSONEncoder returns a json encoder configured for
// pretty-printed output (human-readable)
func NewFormattedJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	enc.SetEscapeHTML(false)
	return enc
}

// LoadObjectFromFile implements the common pattern for loading an instance
// of an object from a json file. Keys absent from the file leave the
// corresponding fields of object untouched.
func LoadObjectFromFile(filename string, object interface{}) (err error) {
	f, err := os.Open(filename)
	if err != nil {
		return
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	err = dec.Decode(object)
	return
}

// SaveObjectToFile implements the common pattern for saving an object to a file as json
func SaveObjectToFile(filename string, object interface{}, prettyFormat bool) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	var enc *json.Encoder
	if prettyFormat {
		enc = NewFormattedJSONEncoder(f)
	} else {
		enc = json.NewEncoder(f)
	}
	return enc.Encode(object)
}
