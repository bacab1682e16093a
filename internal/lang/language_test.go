package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTagByExtension(t *testing.T) {
	cases := map[string]Tag{
		"main.go":        Go,
		"app.ts":         TypeScript,
		"component.tsx":  TSX,
		"index.js":       JavaScript,
		"widget.jsx":     JSX,
		"lib.rs":         Rust,
		"mod.py":         Python,
		"header.h":       C,
		"main.cpp":       Cpp,
		"Program.cs":     CSharp,
		"Main.java":      Java,
		"index.php":      PHP,
		"README.md":      Unsupported,
		"no-extension":   Unsupported,
		"archive.tar.gz": Unsupported,
	}
	for path, want := range cases {
		assert.Equal(t, want, DetectTag(path), "path=%s", path)
	}
}

func TestDetectTagIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Go, DetectTag("main.GO"))
	assert.Equal(t, TypeScript, DetectTag("app.TS"))
}

func TestParseFilterResolvesAliases(t *testing.T) {
	tags := ParseFilter("ts, py,golang")
	assert.ElementsMatch(t, []Tag{TypeScript, Python, Go}, tags)
}

func TestParseFilterDropsUnknownTokens(t *testing.T) {
	tags := ParseFilter("ts,notalanguage,")
	assert.Equal(t, []Tag{TypeScript}, tags)
}

func TestParseFilterEmptyStringYieldsNoTags(t *testing.T) {
	assert.Empty(t, ParseFilter(""))
	assert.Empty(t, ParseFilter("   "))
}

func TestAllTagsCoversEveryFamily(t *testing.T) {
	tags := AllTags()
	seen := make(map[Family]bool)
	for _, tag := range tags {
		seen[FamilyOf(tag)] = true
	}
	for _, fam := range []Family{FamilyTSJS, FamilyC, FamilyCpp, FamilyCSharp, FamilyRust, FamilyPython, FamilyGo, FamilyJava, FamilyPHP} {
		assert.True(t, seen[fam], "family %s not covered by AllTags", fam)
	}
}

func TestFamilyOfGroupsTSAndJSVariants(t *testing.T) {
	assert.Equal(t, FamilyTSJS, FamilyOf(TypeScript))
	assert.Equal(t, FamilyTSJS, FamilyOf(TSX))
	assert.Equal(t, FamilyTSJS, FamilyOf(JavaScript))
	assert.Equal(t, FamilyTSJS, FamilyOf(JSX))
}

func TestFamilyOfUnsupportedIsEmpty(t *testing.T) {
	assert.Equal(t, Family(""), FamilyOf(Unsupported))
}
