package qrcode

import (
	"strings"

	"sahara/config"
	"sahara/internal/domain/entity"
	"sahara/internal/domain/service"
	"sahara/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config block.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateContactCard renders the contact as a MECARD so phone cameras offer to save it.
func (s *qrcodeService) GenerateContactCard(contact *entity.Contact) ([]byte, error) {
	if contact == nil {
		return nil, errors.New("contact is required")
	}

	qrCode, err := qrcode.New(contactCardPayload(contact), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func contactCardPayload(contact *entity.Contact) string {
	var b strings.Builder
	b.WriteString("MECARD:N:")
	b.WriteString(escapeMecard(contact.Name))
	b.WriteString(";TEL:")
	b.WriteString(escapeMecard(contact.PhoneNumber))
	if contact.Relationship != "" {
		b.WriteString(";NOTE:")
		b.WriteString(escapeMecard(contact.Relationship))
	}
	b.WriteString(";;")

	return b.String()
}

var mecardEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`)

func escapeMecard(s string) string {
	return mecardEscaper.Replace(s)
}
