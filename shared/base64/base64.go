package base64

import (
	b64 "encoding/base64"
	"errors"
	"strings"
)

const dataURISeparator = ";base64,"

var ErrInvalidDataURI = errors.New("invalid base64 data URI")

func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, dataURISeparator)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// DecodeDataURI splits a "data:<type>;base64,<payload>" string into its
// content type and raw bytes.
func DecodeDataURI(file string) (contentType string, data []byte, err error) {
	contentType = GetContentType(file)
	if contentType == "" {
		return "", nil, ErrInvalidDataURI
	}

	payload := file[strings.Index(file, dataURISeparator)+len(dataURISeparator):]

	data, err = b64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidDataURI
	}

	return contentType, data, nil
}
