package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := NewDataset("sales.csv", []string{"Date", "Sales"}, [][]string{
		{"2024-01-01", "100"},
		{"2024-01-02", "110"},
		{"2024-01-03", "120"},
	})
	require.NoError(t, err)
	return ds
}

func TestNewDataset_RejectsRaggedRows(t *testing.T) {
	_, err := NewDataset("x", []string{"a", "b"}, [][]string{{"1"}})
	assert.Error(t, err)
}

func TestNewDataset_RejectsDuplicateColumns(t *testing.T) {
	_, err := NewDataset("x", []string{"a", "a"}, nil)
	assert.Error(t, err)
}

func TestDataset_Accessors(t *testing.T) {
	ds := salesDataset(t)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 2, ds.Width())
	assert.Equal(t, []string{"Date", "Sales"}, ds.Columns())
	assert.Equal(t, "110", ds.Cell(1, 1))
	assert.Equal(t, "", ds.Cell(5, 0))

	v, ok := ds.Value(2, "Sales")
	assert.True(t, ok)
	assert.Equal(t, "120", v)

	_, ok = ds.Value(0, "sales")
	assert.False(t, ok)

	assert.Equal(t, map[string]string{"Date": "2024-01-01", "Sales": "100"}, ds.Row(0))
	assert.Nil(t, ds.Row(-1))

	sales, ok := ds.Column("Sales")
	assert.True(t, ok)
	assert.Equal(t, []string{"100", "110", "120"}, sales)
}

func TestDataset_HasColumnsIsCaseSensitive(t *testing.T) {
	ds := salesDataset(t)

	assert.True(t, ds.HasColumns("Date", "Sales"))
	assert.False(t, ds.HasColumns("date", "Sales"))
	assert.Equal(t, []string{"Region"}, ds.MissingColumns("Date", "Region"))
}

func TestDataset_RecordsAreCopies(t *testing.T) {
	ds := salesDataset(t)

	records := ds.Records()
	records[0][1] = "999"
	cols := ds.Columns()
	cols[0] = "Changed"

	assert.Equal(t, "100", ds.Cell(0, 1))
	assert.Equal(t, "Date", ds.Columns()[0])
}

func TestDataset_Equal(t *testing.T) {
	a := salesDataset(t)
	b := salesDataset(t)
	b.Name = "other.csv"
	assert.True(t, a.Equal(b))

	c, err := NewDataset("c", []string{"Date", "Sales"}, [][]string{{"2024-01-01", "100"}})
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	var nilDS *Dataset
	assert.False(t, a.Equal(nilDS))
	assert.True(t, nilDS.Equal(nil))
}
