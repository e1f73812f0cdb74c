package config

import (
	"encoding/xml"
	"errors"
	"io"

	"golang.org/x/net/html/charset"
)

func ParseXML(reader io.Reader) (*ZusiEnvironment, error) {
	d := xml.NewDecoder(reader)
	d.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := d.Token()
		if tok == nil || err == io.EOF {
			// EOF means we're done.
			break
		} else if err != nil {
			return nil, err
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			if ty.Name.Local != "ZusiEnvironment" {
				return nil, errors.New("root element must be ZusiEnvironment, got " + ty.Name.Local)
			}

			var environment ZusiEnvironment
			if err = d.DecodeElement(&environment, &ty); err != nil {
				return nil, err
			}
			return &environment, nil
		default:
		}
	}

	return nil, errors.New("config has no ZusiEnvironment element")
}
