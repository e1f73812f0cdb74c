package zusi

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func ParseXML(reader io.Reader) (*Zusi, error) {
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
			if ty.Name.Local != "Zusi" {
				return nil, errors.New("root element must be Zusi, got " + ty.Name.Local)
			}

			var document Zusi
			if err = d.DecodeElement(&document, &ty); err != nil {
				return nil, err
			}

			log.Debug().
				Str("type", document.Info.DateiTyp).
				Str("version", document.Info.Version).
				Msg("Successfully parsed document")

			return &document, nil
		default:
		}
	}

	return nil, errors.New("document has no Zusi root element")
}

func ReadFile(path string) (*Zusi, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	document, err := ParseXML(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM)))
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	return document, nil
}

func ReadZug(path string) (*Zug, error) {
	document, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if document.Zug == nil {
		return nil, &WrongFileTypeError{Path: path, Expected: DateiTypZug}
	}
	return document.Zug, nil
}

func ReadBuchfahrplan(path string) (*Buchfahrplan, error) {
	document, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if document.Buchfahrplan == nil {
		return nil, &WrongFileTypeError{Path: path, Expected: DateiTypBuchfahrplan}
	}
	return document.Buchfahrplan, nil
}

// ReadFahrplan returns the whole document so that the Info block of the
// template survives when it is written back.
func ReadFahrplan(path string) (*Zusi, error) {
	document, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if document.Fahrplan == nil {
		return nil, &WrongFileTypeError{Path: path, Expected: DateiTypFahrplan}
	}
	return document, nil
}

func Marshal(document *Zusi) ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buffer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(document); err != nil {
		return nil, err
	}
	buffer.WriteString("\n")

	return buffer.Bytes(), nil
}

func WriteFile(path string, document *Zusi) error {
	content, err := Marshal(document)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &FileError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return &FileError{Path: path, Err: err}
	}

	log.Debug().Str("path", path).Msg("Wrote file")
	return nil
}

func WriteZug(path string, zug *Zug) error {
	return WriteFile(path, &Zusi{
		Info: Info{DateiTyp: DateiTypZug, Version: ZugVersion, MinVersion: ZugVersion},
		Zug:  zug,
	})
}

func WriteBuchfahrplan(path string, buchfahrplan *Buchfahrplan) error {
	return WriteFile(path, &Zusi{
		Info:         Info{DateiTyp: DateiTypBuchfahrplan, Version: BuchfahrplanVersion, MinVersion: BuchfahrplanVersion},
		Buchfahrplan: buchfahrplan,
	})
}
