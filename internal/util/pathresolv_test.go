//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// chdir switches the process working directory for the duration of the
// test and restores it afterwards.
func chdir(t *testing.T, dir string) {
	old, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestResolveFileAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	assert.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	resolved, err := ResolveFile(file)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(file), resolved)
}

func TestResolveFileRelativeToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("x"), 0644))
	chdir(t, dir)

	resolved, err := ResolveFile("config.toml")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(filepath.Join(dir, "config.toml")), resolved)
}

func TestResolveFileNotFound(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist.toml")

	_, err := ResolveFile(missing)
	assert.Error(t, err)
}

func TestResolveFolderRelativeToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "config")
	assert.NoError(t, os.Mkdir(sub, 0755))
	chdir(t, dir)

	resolved, err := ResolveFolder("config")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(sub), resolved)
}

func TestResolveFolderNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := ResolveFolder(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestResolveCreateFolderUsesExistingFolder(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "data")
	assert.NoError(t, os.Mkdir(sub, 0755))
	chdir(t, dir)

	resolved, err := ResolveCreateFolder(sub)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(sub), resolved)
}

func TestResolveCreateFolderCreatesMissingFolderInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	resolved, err := ResolveCreateFolder("newfolder")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(filepath.Join(dir, "newfolder")), resolved)

	info, statErr := os.Stat(resolved)
	assert.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
