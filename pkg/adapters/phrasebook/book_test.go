package phrasebook_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/introducer/pkg/adapters/phrasebook"
	"github.com/aretw0/introducer/pkg/core"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Formats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "formal.yaml", "greeting: \"Good day.\"\n")
	writeFile(t, dir, "nested/casual.json", `{"greeting": "Hi!"}`)
	writeFile(t, dir, "extra.yml", "greetings:\n  - style: shout\n    greeting: \"HELLO!\"\n  - style: quiet\n    greeting: \"\"\n")
	writeFile(t, dir, "named.yaml", "style: pirate\ngreeting: \"Ahoy!\"\n")
	writeFile(t, dir, "README.md", "not a phrasebook file")

	book, err := phrasebook.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"casual", "formal", "pirate", "quiet", "shout"}, book.Styles())

	greeting, err := book.Lookup("formal")
	require.NoError(t, err)
	assert.Equal(t, "Good day.", greeting)

	greeting, err = book.Lookup("quiet")
	require.NoError(t, err)
	assert.Equal(t, "", greeting, "an explicit empty greeting is a valid greeting")

	src, ok := book.Source("casual")
	require.True(t, ok)
	assert.Equal(t, "nested/casual.json", src)
}

func TestLoad_MultipleDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "multi.yaml", "style: wave\ngreeting: Hey\n---\nstyle: bow\ngreeting: Greetings.\n---\ngreetings:\n  - style: nod\n    greeting: \"\"\n")
	writeFile(t, dir, "stream.json", `{"style": "salute", "greeting": "Sir!"} {"style": "wink", "greeting": ";)"}`)

	book, err := phrasebook.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"bow", "nod", "salute", "wave", "wink"}, book.Styles())

	greeting, err := book.Lookup("bow")
	require.NoError(t, err)
	assert.Equal(t, "Greetings.", greeting)

	greeting, err = book.Lookup("wink")
	require.NoError(t, err)
	assert.Equal(t, ";)", greeting)
}

func TestLoad_LaterFileOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "style: hello\ngreeting: first\n")
	writeFile(t, dir, "b.yaml", "style: hello\ngreeting: second\n")

	book, err := phrasebook.Load(dir)
	require.NoError(t, err)

	greeting, err := book.Lookup("hello")
	require.NoError(t, err)
	assert.Equal(t, "second", greeting)
}

func TestLoad_Pattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en/hello.yaml", "greeting: Hello!\n")
	writeFile(t, dir, "pt/ola.yaml", "greeting: Olá!\n")

	book, err := phrasebook.Load(dir, phrasebook.WithPattern("pt/*.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ola"}, book.Styles())

	_, err = phrasebook.Load(dir, phrasebook.WithPattern("[unclosed"))
	assert.ErrorIs(t, err, phrasebook.ErrInvalidPattern)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := phrasebook.Load(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := phrasebook.Load(t.TempDir())
		assert.ErrorIs(t, err, phrasebook.ErrEmptyBook)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.yaml", "greeting: [unterminated\n")
		_, err := phrasebook.Load(dir)
		assert.ErrorContains(t, err, "bad.yaml")
	})

	t.Run("unknown field", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "typo.json", `{"greting": "Hi"}`)
		_, err := phrasebook.Load(dir)
		assert.ErrorContains(t, err, "typo.json")
	})

	t.Run("style repeated across documents", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "multi.yaml", "greeting: a\n---\ngreeting: b\n")
		_, err := phrasebook.Load(dir)
		assert.ErrorContains(t, err, `multi.yaml: style "multi" defined more than once`)
	})

	t.Run("malformed second document", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "multi.yaml", "greeting: a\n---\ngreeting: [broken\n")
		_, err := phrasebook.Load(dir)
		assert.ErrorContains(t, err, "multi.yaml")
	})

	t.Run("list entry without style", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "list.yaml", "greetings:\n  - greeting: Hi\n")
		_, err := phrasebook.Load(dir)
		assert.ErrorContains(t, err, "has no style")
	})

	t.Run("no greeting", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "empty.yaml", "")
		_, err := phrasebook.Load(dir)
		assert.ErrorContains(t, err, "no greeting defined")
	})
}

func TestBook_DefaultStyle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "casual.yaml", "greeting: Hi!\n")
	writeFile(t, dir, "formal.yaml", "greeting: Good day.\n")

	book, err := phrasebook.Load(dir)
	require.NoError(t, err)
	greeting, err := book.Greet()
	require.NoError(t, err)
	assert.Equal(t, "Hi!", greeting, "first sorted style is the default")

	book, err = phrasebook.Load(dir, phrasebook.WithDefaultStyle("formal"))
	require.NoError(t, err)
	greeting, err = book.Greet()
	require.NoError(t, err)
	assert.Equal(t, "Good day.", greeting)

	book, err = phrasebook.Load(dir, phrasebook.WithDefaultStyle("klingon"))
	require.NoError(t, err)
	_, err = book.Greet()
	assert.ErrorIs(t, err, phrasebook.ErrStyleNotFound)
}

func TestBook_Reload(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hello.yaml", "greeting: Hello!\n")

	book, err := phrasebook.Load(dir)
	require.NoError(t, err)
	greeter := book.Greeter("hello")

	writeFile(t, dir, "hello.yaml", "greeting: Howdy!\n")
	require.NoError(t, book.Reload())

	greeting, err := greeter.Greet()
	require.NoError(t, err)
	assert.Equal(t, "Howdy!", greeting, "greeters resolve their style on every call")

	// A broken file must not wipe the loaded greetings.
	writeFile(t, dir, "hello.yaml", "greeting: [broken\n")
	require.Error(t, book.Reload())

	greeting, err = greeter.Greet()
	require.NoError(t, err)
	assert.Equal(t, "Howdy!", greeting)

	state := book.State().(phrasebook.BookState)
	assert.Equal(t, 2, state.Reloads)
	assert.Equal(t, []string{"hello"}, state.Styles)
	assert.NotNil(t, state.LoadedAt)
	assert.False(t, state.Watching)
}

func TestBook_WithIntroducer(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hello.yaml", "greeting: Hello!\n")

	book, err := phrasebook.Load(dir)
	require.NoError(t, err)

	intro := core.NewIntroducer(book.Greeter("hello"))
	out, err := intro.Introduce("Ada")
	require.NoError(t, err)
	assert.Equal(t, "Hello! My name is Ada.", out)

	state := intro.State().(core.IntroducerState)
	assert.Equal(t, "phrasebook", state.GreeterType)

	// A missing style is a collaborator failure and surfaces unchanged.
	missing := book.Greeter("formal")
	_, greetErr := missing.Greet()
	_, err = core.NewIntroducer(missing).Introduce("Ada")
	assert.ErrorIs(t, err, phrasebook.ErrStyleNotFound)
	assert.Equal(t, greetErr.Error(), err.Error())
}
