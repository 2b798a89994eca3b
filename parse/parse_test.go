package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	for _, tc := range []struct {
		name     string
		content  string
		expected []Row
	}{
		{
			"minimal",
			`alert_id,status
1,ACTIVE
2,INACTIVE`,
			[]Row{
				{"alert_id": "1", "status": "ACTIVE"},
				{"alert_id": "2", "status": "INACTIVE"},
			},
		},

		{
			"quoted comma is not a separator",
			`stop_id,lst
S1,"TMB, AMB, Sagalés"`,
			[]Row{
				{"stop_id": "S1", "lst": "TMB, AMB, Sagalés"},
			},
		},

		{
			"doubled quote is a literal quote",
			`id,name
1,"say ""hi"""`,
			[]Row{
				{"id": "1", "name": `say "hi"`},
			},
		},

		{
			"surrounding whitespace trimmed",
			"id,name\n 1 ,  metro  ",
			[]Row{
				{"id": "1", "name": "metro"},
			},
		},

		{
			"quoted field keeps inner whitespace",
			`id,name
1," padded "`,
			[]Row{
				{"id": "1", "name": " padded "},
			},
		},

		{
			"short row dropped",
			`a,b,c
1,2,3
4,5
6,7,8`,
			[]Row{
				{"a": "1", "b": "2", "c": "3"},
				{"a": "6", "b": "7", "c": "8"},
			},
		},

		{
			"long row dropped",
			`a,b
1,2,3`,
			[]Row{},
		},

		{
			"empty field values",
			`a,b,c
1,,3`,
			[]Row{
				{"a": "1", "b": "", "c": "3"},
			},
		},

		{
			"header only",
			`a,b,c`,
			nil,
		},

		{
			"empty input",
			"",
			nil,
		},

		{
			"crlf line endings",
			"a,b\r\n1,2\r\n",
			[]Row{
				{"a": "1", "b": "2"},
			},
		},

		{
			"unicode bom stripped",
			"\xef\xbb\xbfa,b\n1,2",
			[]Row{
				{"a": "1", "b": "2"},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Table([]byte(tc.content)))
		})
	}
}

func TestTableShape(t *testing.T) {
	rows := Table([]byte(`a,b,c
1,2,3
4,5,6
7,8,9`))

	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.Len(t, row, 3)
		for _, key := range []string{"a", "b", "c"} {
			assert.Contains(t, row, key)
		}
	}
}
