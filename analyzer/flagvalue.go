// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"strconv"

	"fillmore-labs.com/onevar/internal/config"
)

// boolValue is a boolean [flag.Value] backed by a single bit of a [config.BitMask].
type boolValue[T config.Flags] struct {
	flags *config.BitMask[T]
	value T
}

func behaviorValue(flags *config.Behavior, value config.Config) boolValue[config.Config] {
	return boolValue[config.Config]{flags: flags, value: value}
}

func (f boolValue[_]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

func (f boolValue[_]) String() string {
	if f.flags == nil {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

func (f boolValue[_]) Get() any {
	if f.flags == nil {
		return false
	}

	return f.flags.Enabled(f.value)
}

func (f boolValue[_]) IsBoolFlag() bool { return true }

func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
