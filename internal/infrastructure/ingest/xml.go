package ingest

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/yaseenahmed1407/AkasaAir/pkg/apperror"
)

// xmlRecord captures one repeated record element; every child element
// becomes one named field.
type xmlRecord struct {
	Fields []xmlField `xml:",any"`
}

type xmlField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// ReadOrdersXML decodes the orders XML file into a RawTable. The document
// root wraps one element per order line. Field names are not fixed here:
// the columns are whatever child elements the records carry, in order of
// first appearance.
func ReadOrdersXML(path string) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperror.NewParseError(path, 0, "", err)
	}
	defer f.Close()
	return DecodeXML(path, f)
}

// DecodeXML decodes XML content from r, labelling errors with source.
func DecodeXML(source string, r io.Reader) (*RawTable, error) {
	dec := xml.NewDecoder(r)
	table := &RawTable{Source: source}
	seen := make(map[string]bool)

	var rootSeen bool
	idx := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperror.NewParseError(source, idx, "", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !rootSeen {
			rootSeen = true
			continue
		}

		var rec xmlRecord
		if err := dec.DecodeElement(&rec, &start); err != nil {
			return nil, apperror.NewParseError(source, idx+1, "", err)
		}
		idx++
		row := RawRow{Index: idx, Values: make(map[string]string, len(rec.Fields))}
		for _, f := range rec.Fields {
			name := f.XMLName.Local
			if !seen[name] {
				seen[name] = true
				table.Columns = append(table.Columns, name)
			}
			// Element text keeps any pretty-printing whitespace; that
			// formatting is not data.
			row.Values[name] = strings.TrimSpace(f.Value)
		}
		table.Rows = append(table.Rows, row)
	}
	if !rootSeen {
		return nil, apperror.NewParseError(source, 0, "", errors.New("document has no root element"))
	}
	return table, nil
}
