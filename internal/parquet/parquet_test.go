package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/rolodex/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleContacts() []schema.Contact {
	dob := schema.Date(1990, time.June, 10)
	return []schema.Contact{
		{Name: "Ann", Phones: []string{"0123456789", "1111111111"}, Birthday: &dob},
		{Name: "Bo"},
	}
}

func fixedDays(b *time.Time) int {
	if b == nil {
		return -1
	}
	return 3
}

func TestContactRowStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(ContactRow))
	require.NotNil(t, s)

	for _, colName := range []string{"name", "phones", "birthday", "days_until_birthday"} {
		_, ok := s.Lookup(colName)
		assert.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestContactRows(t *testing.T) {
	rows := ContactRows(sampleContacts(), fixedDays)
	require.Len(t, rows, 2)

	assert.Equal(t, "Ann", rows[0].Name)
	assert.Equal(t, []string{"0123456789", "1111111111"}, rows[0].Phones)
	require.NotNil(t, rows[0].Birthday)
	assert.Equal(t, "1990-06-10", *rows[0].Birthday)
	assert.Equal(t, int32(3), rows[0].DaysUntilBirthday)

	assert.Equal(t, "Bo", rows[1].Name)
	assert.Empty(t, rows[1].Phones)
	assert.Nil(t, rows[1].Birthday)
	assert.Equal(t, int32(-1), rows[1].DaysUntilBirthday)
}

func TestWriteContactsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "contacts.parquet")
	data := ContactRows(sampleContacts(), fixedDays)

	require.NoError(t, WriteContactsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ContactRow](file)
	defer reader.Close()

	readData := make([]ContactRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].Name, readData[i].Name)
		assert.Equal(t, data[i].DaysUntilBirthday, readData[i].DaysUntilBirthday)
		assert.Len(t, readData[i].Phones, len(data[i].Phones))
		if data[i].Birthday == nil {
			assert.Nil(t, readData[i].Birthday)
		} else {
			require.NotNil(t, readData[i].Birthday)
			assert.Equal(t, *data[i].Birthday, *readData[i].Birthday)
		}
	}
}

func TestWriteContactsParquet_InvalidPath(t *testing.T) {
	err := WriteContactsParquet(nil, filepath.Join(t.TempDir(), "missing", "contacts.parquet"))
	assert.Error(t, err)
}
