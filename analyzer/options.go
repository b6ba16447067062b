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
	"log/slog"

	"fillmore-labs.com/onevar/analyzer/mode"
	"fillmore-labs.com/onevar/internal/config"
	"fillmore-labs.com/onevar/internal/run"
)

// Option configures specific behavior of the onevar [analysis.Analyzer].
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that also implements the [Option] interface itself.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr returns a [slog.Attr] for logging.
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithMode selects the var declaration policy.
func WithMode(m mode.Mode) Option { return modeOption{mode: m} }

type modeOption struct{ mode mode.Mode }

func (o modeOption) apply(r *run.Options) {
	r.Mode = o.mode
}

func (o modeOption) LogAttr() slog.Attr {
	return slog.String("mode", o.mode.String())
}

// WithGenerated is an [Option] to configure diagnostics for generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFileScope is an [Option] to configure diagnostics for package-level var declarations.
func WithFileScope(fileScope bool) Option { return fileScopeOption{fileScope: fileScope} }

type fileScopeOption struct{ fileScope bool }

func (o fileScopeOption) apply(r *run.Options) {
	r.Behavior.Set(config.FileScope, o.fileScope)
}

func (o fileScopeOption) LogAttr() slog.Attr {
	return slog.Bool("file-scope", o.fileScope)
}
