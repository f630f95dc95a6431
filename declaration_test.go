package cascade

import (
	"testing"

	"github.com/npillmayer/cascade/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationMergeFirstWins(t *testing.T) {
	a := NewDeclaration(4)
	a.Set(0, style.Number(1))
	b := NewDeclaration(4)
	b.Set(0, style.Number(2))
	b.Set(1, style.Number(3))
	count := a.Merge(b)
	assert.Equal(t, 1, count, "only the unset slot merges")
	assert.Equal(t, 1.0, a.Get(0).Number(), "slot 0 keeps its value")
	assert.Equal(t, 3.0, a.Get(1).Number(), "slot 1 takes the merged value")
}

func TestDeclarationReplaceLastWins(t *testing.T) {
	a := NewDeclaration(4)
	a.Set(0, style.Number(1))
	a.Set(1, style.Number(9))
	b := NewDeclaration(4)
	b.Set(0, style.Number(2))
	count := a.Replace(b)
	assert.Equal(t, 1, count)
	assert.Equal(t, 2.0, a.Get(0).Number(), "slot 0 is overwritten")
	assert.Equal(t, 9.0, a.Get(1).Number(), "slot 1 stays")
}

func TestDeclarationGrow(t *testing.T) {
	a := NewDeclaration(2)
	a.Set(7, style.Keyword(style.KeywordAuto))
	require.Equal(t, 8, a.Len())
	assert.True(t, a.IsSet(7))
	assert.False(t, a.IsSet(3))
	assert.Equal(t, style.TypeNone, a.Get(100).Type(), "out of range reads as empty")
	//
	b := NewDeclaration(1)
	b.Merge(a)
	assert.Equal(t, 8, b.Len(), "merge grows the destination")
	assert.True(t, b.IsSet(7))
}

func TestDeclarationClearAndClone(t *testing.T) {
	a := NewDeclaration(3)
	a.Set(1, style.Array(style.Unit(1, "px"), style.Unit(2, "px")))
	c := a.Clone()
	a.Clear()
	assert.Equal(t, 3, a.Len(), "clear keeps the slot count")
	assert.False(t, a.IsSet(1))
	require.True(t, c.IsSet(1), "clone unaffected by clear")
	assert.Equal(t, 2, len(c.Get(1).Items()))
}

func TestPropertyListBasics(t *testing.T) {
	l := NewPropertyList()
	p := l.Add(KeyWidth)
	assert.Equal(t, style.TypeInvalid, p.Value.Type(), "fresh slot holds the invalid value")
	p.Value = style.Keyword(style.KeywordAuto)
	//
	assert.NotNil(t, l.Find(KeyWidth))
	assert.Nil(t, l.Find(KeyHeight))
	l.Set(KeyHeight, style.Percent(50))
	assert.Equal(t, 2, l.Len())
	l.Set(KeyHeight, style.Percent(80))
	assert.Equal(t, 2, l.Len(), "set reuses the existing entry")
	assert.True(t, l.Remove(KeyWidth))
	assert.False(t, l.Remove(KeyWidth))
	assert.Equal(t, 1, l.Len())
}

func TestPropertyListMergeDeclaration(t *testing.T) {
	d := NewDeclaration(4)
	d.Set(0, style.Number(1))
	d.Set(2, style.Number(2))
	l := NewPropertyList()
	count := l.MergeDeclaration(d)
	require.Equal(t, 2, count)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 0, l.entries[0].Key, "entries keep key order of the declaration")
	assert.Equal(t, 2, l.entries[1].Key)
}

func TestDeclarationMergeProperties(t *testing.T) {
	l := NewPropertyList()
	l.Set(1, style.Number(1))
	l.Set(1, style.Number(2)) // reuses the entry
	l.Add(3).Value = style.Number(3)
	l.Add(3).Value = style.Number(4) // duplicate key, first one wins
	d := NewDeclaration(4)
	count := d.MergeProperties(l)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2.0, d.Get(1).Number())
	assert.Equal(t, 3.0, d.Get(3).Number())
}

func TestDeclarationString(t *testing.T) {
	d := NewDeclaration(KeyTotal)
	d.Set(KeyWidth, style.Percent(50))
	s := d.String()
	assert.Contains(t, s, "width: 50%")
}
