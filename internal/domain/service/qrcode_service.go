package service

import "sahara/internal/domain/entity"

// QRCodeService renders scannable contact cards.
type QRCodeService interface {
	// GenerateContactCard encodes the contact as a MECARD and returns PNG bytes.
	GenerateContactCard(contact *entity.Contact) ([]byte, error)
}
