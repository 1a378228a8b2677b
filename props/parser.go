// Copyright 2026 The DicomParser Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package props

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/markheramis/DicomParser/dictionary"
)

// Parser projects files into JSON. A Parser holds no per-call state and may be shared by
// goroutines.
type Parser struct {
	style    KeyStyle
	dict     dictionary.Dictionary
	decoder  Decoder
	temporal bool
	logger   *zap.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithKeyStyle selects symbolic (default) or numeric keys
func WithKeyStyle(style KeyStyle) Option {
	return func(p *Parser) {
		p.style = style
	}
}

// WithDictionary replaces the standard dictionary used for symbolic keys
func WithDictionary(dict dictionary.Dictionary) Option {
	return func(p *Parser) {
		p.dict = dict
	}
}

// WithDecoder replaces the default NativeDecoder
func WithDecoder(d Decoder) Option {
	return func(p *Parser) {
		p.decoder = d
	}
}

// WithTemporalParsing renders DA, TM and DT values as calendar text (2011-11-02, 15:07:58.591,
// ...) instead of the stored form
func WithTemporalParsing(enabled bool) Option {
	return func(p *Parser) {
		p.temporal = enabled
	}
}

// WithLogger sets the logger of the Parser. The package logger is used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		p.logger = l
	}
}

// NewParser returns a Parser with symbolic keys, the standard dictionary and the native decoder
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		style:   KeyStyleSymbolic,
		decoder: NativeDecoder{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.dict == nil {
		p.dict = dictionary.Standard()
	}
	if p.decoder == nil {
		p.decoder = NativeDecoder{}
	}
	return p
}

// ParseFile returns the JSON projection of the file at path using the default decoder and
// dictionary
func ParseFile(path string, style KeyStyle) ([]byte, error) {
	return NewParser(WithKeyStyle(style)).ParseFile(path)
}

// ParseFile validates the path, decodes the file, projects its elements and encodes the record.
// It returns either the complete JSON text or an *Error, never partial output.
func (p *Parser) ParseFile(path string) ([]byte, error) {
	record, err := p.Project(path)
	if err != nil {
		return nil, err
	}

	out, err := Encode(record)
	if err != nil {
		return nil, newError(KindSerialization, path, "encoding record", err)
	}
	return out, nil
}

// Project is ParseFile without the final encoding step
func (p *Parser) Project(path string) (Record, error) {
	log := p.log()

	resolved, err := ValidatePath(path)
	if err != nil {
		return nil, err
	}
	log.Debug("path validated", zap.String("path", path), zap.String("resolved", resolved))

	elements, err := p.decoder.Decode(resolved)
	if err != nil {
		return nil, newError(KindDecode, resolved, "decoding file", err)
	}
	if p.temporal {
		elements = withTemporalValues(elements)
	}
	log.Debug("file decoded", zap.String("path", resolved), zap.Int("elements", len(elements)))

	record, skipped := project(elements, p.style, p.dict)
	log.Debug("elements projected",
		zap.String("path", resolved),
		zap.Stringer("style", p.style),
		zap.Int("keys", len(record)),
		zap.Int("skipped", skipped))

	return record, nil
}

// ValidatePath checks that path names an existing regular file and returns its absolute form with
// symbolic links resolved
func ValidatePath(path string) (string, error) {
	if path == "" {
		return "", newError(KindInvalidInput, "", "empty path", nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", newError(KindPathNotFound, path, "stat", err)
	}
	if !info.Mode().IsRegular() {
		return "", newError(KindNotRegularFile, path, info.Mode().Type().String(), nil)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", newError(KindPathNotFound, path, "resolving absolute path", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", newError(KindPathNotFound, path, "resolving symbolic links", err)
	}
	return resolved, nil
}

func (p *Parser) log() *zap.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger()
}
