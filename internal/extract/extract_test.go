package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/codelens/internal/lang"
	"github.com/codelens/codelens/internal/lang/queries"
	"github.com/codelens/codelens/internal/model"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	pm := lang.NewParserManager(nil)
	qm := queries.NewManager(pm, nil)
	return New(pm, qm, nil)
}

func TestExtractFileRejectsUnsupportedExtension(t *testing.T) {
	e := newExtractor(t)
	_, err := e.ExtractFile("notes.txt", []byte("hello"))
	assert.Error(t, err)
}

func TestExtractFileTypeScriptImportExpansion(t *testing.T) {
	src := `import React, { useState, useEffect } from "react";
import * as path from "path";

export function App() {
  return useState(0);
}
`
	e := newExtractor(t)
	res, err := e.ExtractFile("app.ts", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, lang.TypeScript, res.Tag)

	specifiers := make(map[string]bool)
	for _, imp := range res.Imports {
		specifiers[imp.LocalName] = true
	}
	assert.True(t, specifiers["React"], "default import should be expanded")
	assert.True(t, specifiers["useState"], "named import should be expanded")
	assert.True(t, specifiers["useEffect"], "named import should be expanded")
	assert.True(t, specifiers["path"], "namespace import should be expanded")

	for _, imp := range res.Imports {
		if imp.ModuleSpecifier == "react" || imp.ModuleSpecifier == "path" {
			assert.True(t, imp.IsExternal, "bare specifier imports are external")
		}
	}
}

func TestExtractFileRustExportedFunction(t *testing.T) {
	src := `/// Greets the caller.
pub fn hello() -> String {
    "hi".to_string()
}

fn internal_helper() {}
`
	e := newExtractor(t)
	res, err := e.ExtractFile("lib.rs", []byte(src))
	require.NoError(t, err)

	foundHello, foundHelper := false, false
	for _, s := range res.Symbols {
		if s.Name == "hello" {
			foundHello = true
			assert.True(t, s.IsExported, "pub fn should be exported")
		}
		if s.Name == "internal_helper" {
			foundHelper = true
			assert.False(t, s.IsExported, "non-pub fn should not be exported")
		}
	}
	assert.True(t, foundHello, "expected to find hello() symbol")
	assert.True(t, foundHelper, "expected to find internal_helper() symbol")

	require.NotEmpty(t, res.Comments, "expected the Rust line_comment/block_comment bundle to match")
	foundDoc := false
	for _, c := range res.Comments {
		if c.AssociatedSymbol == "hello" {
			foundDoc = true
			assert.Equal(t, model.CommentDoc, c.Kind, "/// should classify as a doc comment")
		}
	}
	assert.True(t, foundDoc, "expected the /// comment to associate with hello")
}

func TestExtractFileJavaDocCommentAssociation(t *testing.T) {
	src := `public class Greeter {
    /**
     * Greets the caller.
     */
    public void hello() {
    }
}
`
	e := newExtractor(t)
	res, err := e.ExtractFile("Greeter.java", []byte(src))
	require.NoError(t, err)

	require.NotEmpty(t, res.Comments, "expected the Java line_comment/block_comment bundle to match")
	foundDoc := false
	for _, c := range res.Comments {
		if c.AssociatedSymbol == "hello" {
			foundDoc = true
			assert.Equal(t, model.CommentDoc, c.Kind)
		}
	}
	assert.True(t, foundDoc, "expected the /** */ comment to associate with hello")
}

func TestExtractFileCImportClassification(t *testing.T) {
	src := `#include <stdio.h>
#include "local.h"

int main() {
    return 0;
}
`
	e := newExtractor(t)
	res, err := e.ExtractFile("main.c", []byte(src))
	require.NoError(t, err)

	external, internal := false, false
	for _, imp := range res.Imports {
		switch imp.ModuleSpecifier {
		case "stdio.h":
			external = true
			assert.True(t, imp.IsExternal, "angle-bracket include is external")
		case "local.h":
			internal = true
			assert.False(t, imp.IsExternal, "quoted include is internal")
		}
	}
	assert.True(t, external, "expected stdio.h include")
	assert.True(t, internal, "expected local.h include")
}

func TestExtractFilePythonExportedNames(t *testing.T) {
	src := `def _helper():
    pass

class Foo:
    pass

def bar():
    pass
`
	e := newExtractor(t)
	res, err := e.ExtractFile("mod.py", []byte(src))
	require.NoError(t, err)

	for _, s := range res.Symbols {
		switch s.Name {
		case "_helper":
			assert.False(t, s.IsExported, "leading underscore means unexported")
		case "Foo", "bar":
			assert.True(t, s.IsExported, "%s should be exported", s.Name)
		}
	}
}

func TestExtractFileCDocCommentAssociation(t *testing.T) {
	src := `/** Calculates sum */
int sum(int a, int b) {
    return a + b;
}
`
	e := newExtractor(t)
	res, err := e.ExtractFile("sum.c", []byte(src))
	require.NoError(t, err)

	require.NotEmpty(t, res.Comments)
	found := false
	for _, c := range res.Comments {
		if c.AssociatedSymbol == "sum" {
			found = true
			assert.Equal(t, model.CommentDoc, c.Kind)
		}
	}
	assert.True(t, found, "doc comment should associate with sum")
}
