package csvimport

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsedFabricCSV(t *testing.T, csv string, opts ...ParserOption) *CSVParser {
	t.Helper()
	parser, err := NewCSVParser(strings.NewReader(csv), opts...)
	require.NoError(t, err)
	require.NoError(t, parser.ParseHeader())
	return parser
}

func TestNewCSVParser(t *testing.T) {
	t.Run("accepts plain UTF-8", func(t *testing.T) {
		parser, err := NewCSVParser(strings.NewReader("name,color\nLinen,White"))
		require.NoError(t, err)
		require.NotNil(t, parser)
	})

	t.Run("strips a UTF-8 BOM before the header", func(t *testing.T) {
		// Spreadsheet exports routinely lead with 0xEF 0xBB 0xBF
		parser := parsedFabricCSV(t, "\xEF\xBB\xBFname,color\nLinen,White")
		assert.Equal(t, "name", parser.Headers()[0])
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		parser, err := NewCSVParser(strings.NewReader(""))
		assert.Nil(t, parser)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("honors a custom delimiter", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name;color;stock_meters\nLinen;White;12", WithDelimiter(';'))
		assert.Equal(t, []string{"name", "color", "stock_meters"}, parser.Headers())
	})
}

func TestParseHeader(t *testing.T) {
	t.Run("maps columns to indexes", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name,color,stock_meters\nLinen,White,12")
		assert.Equal(t, []string{"name", "color", "stock_meters"}, parser.Headers())
		assert.Equal(t, map[string]int{"name": 0, "color": 1, "stock_meters": 2}, parser.HeaderMap())
	})

	t.Run("trims whitespace around column names", func(t *testing.T) {
		parser := parsedFabricCSV(t, "  name  ,  color  \nLinen,White")
		assert.Equal(t, []string{"name", "color"}, parser.Headers())
	})

	t.Run("HasHeader reports known columns only", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name,color\nLinen,White")
		assert.True(t, parser.HasHeader("name"))
		assert.True(t, parser.HasHeader("color"))
		assert.False(t, parser.HasHeader("price_per_meter"))
	})

	t.Run("ValidateHeaders lists the missing columns", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name,color\nLinen,White")
		missing := parser.ValidateHeaders([]string{"name", "color", "stock_meters", "price_per_meter"})
		assert.ElementsMatch(t, []string{"stock_meters", "price_per_meter"}, missing)
	})
}

func TestReadRow(t *testing.T) {
	t.Run("reads a row by column name", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name,color,stock_meters\nPiña Cotton,Ivory,30")

		row, err := parser.ReadRow()

		require.NoError(t, err)
		assert.Equal(t, 2, row.LineNumber)
		assert.Equal(t, "Piña Cotton", row.Get("name"))
		assert.Equal(t, "Ivory", row.Get("color"))
		assert.Equal(t, "30", row.Get("stock_meters"))
	})

	t.Run("short rows read as empty trailing columns", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name,color,stock_meters,price_per_meter\nLinen,White")

		row, err := parser.ReadRow()

		require.NoError(t, err)
		assert.Equal(t, "Linen", row.Get("name"))
		assert.Equal(t, "", row.Get("stock_meters"))
		assert.Equal(t, "", row.Get("price_per_meter"))
	})

	t.Run("GetOrDefault fills blanks and unknown columns", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name,color,stock_meters\nLinen,White,")

		row, _ := parser.ReadRow()

		assert.Equal(t, "Linen", row.GetOrDefault("name", "unnamed"))
		assert.Equal(t, "0", row.GetOrDefault("stock_meters", "0"))
		assert.Equal(t, "none", row.GetOrDefault("supplier", "none"))
	})

	t.Run("flags rows with no values as empty", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name,color\n,,\nLinen,White")

		blank, _ := parser.ReadRow()
		assert.True(t, blank.IsEmpty())

		filled, _ := parser.ReadRow()
		assert.False(t, filled.IsEmpty())
	})

	t.Run("returns EOF past the last row", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name,color\nLinen,White")

		_, err := parser.ReadRow()
		require.NoError(t, err)

		_, err = parser.ReadRow()
		assert.Equal(t, io.EOF, err)
	})
}

func TestReadAllRows(t *testing.T) {
	t.Run("reads every data row in order", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name,color\nLinen,White\nPiña Cotton,Ivory\nJusi,Ecru")

		rows, err := parser.ReadAllRows()

		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Linen", rows[0].Get("name"))
		assert.Equal(t, "Piña Cotton", rows[1].Get("name"))
		assert.Equal(t, "Jusi", rows[2].Get("name"))
	})

	t.Run("drops fully blank rows", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name,color\nLinen,White\n,,\n,,\nJusi,Ecru")

		rows, err := parser.ReadAllRows()

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("counts the rows it consumed", func(t *testing.T) {
		parser := parsedFabricCSV(t, "name,color\nLinen,White\nPiña Cotton,Ivory\nJusi,Ecru")

		_, err := parser.ReadAllRows()

		require.NoError(t, err)
		assert.Equal(t, 3, parser.TotalRows())
	})
}

func TestParseFromBytes(t *testing.T) {
	parser, err := ParseFromBytes([]byte("name,color\nLinen,White"))
	require.NoError(t, err)
	require.NoError(t, parser.ParseHeader())

	row, _ := parser.ReadRow()
	assert.Equal(t, "Linen", row.Get("name"))
}

func TestQuotedFields(t *testing.T) {
	csv := `name,unit,notes
"Shell buttons",pcs,"carved, natural shell"
"Garter 1"" wide",rolls,"labelled ""heavy duty"""
`
	parser := parsedFabricCSV(t, csv)

	row1, _ := parser.ReadRow()
	assert.Equal(t, "Shell buttons", row1.Get("name"))
	assert.Equal(t, "carved, natural shell", row1.Get("notes"))

	row2, _ := parser.ReadRow()
	assert.Equal(t, `Garter 1" wide`, row2.Get("name"))
	assert.Equal(t, `labelled "heavy duty"`, row2.Get("notes"))
}

func TestMultilineFields(t *testing.T) {
	parser := parsedFabricCSV(t, "name,notes\nLinen,\"pre-washed\nshrinks slightly\"")

	row, _ := parser.ReadRow()
	assert.Equal(t, "pre-washed\nshrinks slightly", row.Get("notes"))
}

func TestGetColumnIndex(t *testing.T) {
	parser := parsedFabricCSV(t, "name,color,stock_meters\nLinen,White,12")

	idx, ok := parser.GetColumnIndex("color")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = parser.GetColumnIndex("supplier")
	assert.False(t, ok)
}
