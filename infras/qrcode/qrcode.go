package qrcode

//go:generate go run go.uber.org/mock/mockgen -source=./qrcode.go -destination=./mocks/qrcode_mock.go -package=mocks

import (
	"bytes"
	"fmt"

	"github.com/yeqown/go-qrcode"
)

// Generator renders scannable entry credentials.
type Generator interface {
	Generate(content string) ([]byte, error)
}

type generatorImpl struct{}

func New() Generator {
	return &generatorImpl{}
}

func (g *generatorImpl) Generate(content string) ([]byte, error) {
	qrc, err := qrcode.New(content)
	if err != nil {
		return nil, fmt.Errorf("failed to build QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := qrc.SaveTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	return buf.Bytes(), nil
}
