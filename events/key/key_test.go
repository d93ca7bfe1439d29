// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodesString(t *testing.T) {
	for _, c := range CodesValues() {
		var d Codes
		require.NoError(t, d.SetString(c.String()))
		assert.Equal(t, c, d)
	}
	var d Codes
	assert.Error(t, d.SetString("Hyper"))
	assert.True(t, CodeUpArrow.IsArrow())
	assert.False(t, CodeTab.IsArrow())
}

func TestModifiers(t *testing.T) {
	var m Modifiers
	m.SetFlag(true, Shift)
	m.SetFlag(true, Alt)
	assert.Equal(t, "Shift+Alt", m.String())
	assert.True(t, m.HasFlag(Shift))
	assert.False(t, m.HasFlag(Shift|Meta))
	assert.True(t, HasAnyModifier(m, Meta, Alt))

	var n Modifiers
	require.NoError(t, n.SetString("alt|shift"))
	assert.Equal(t, m, n)
	assert.Error(t, n.SetString("Shift+Hyper"))

	mod, ok := CodeRightAlt.Modifier()
	assert.True(t, ok)
	assert.Equal(t, Alt, mod)
	_, ok = CodeTab.Modifier()
	assert.False(t, ok)
}
