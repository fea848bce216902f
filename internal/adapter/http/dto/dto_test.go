package dto

import (
	"testing"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewWalletResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWallet(ctrl)
	addrs := map[domain.Chain]string{
		domain.ChainEthereum: "0x9858EfFD232B4033E47d90003D41EC34EcaEda94",
		domain.ChainSolana:   "9wFFyRfZBsuAha4YcuxcXLKwMxJR43S7fPfQLusDBzvT",
	}
	w.EXPECT().Address().Return(addrs[domain.ChainEthereum])
	w.EXPECT().Addresses().Return(addrs)
	w.EXPECT().PublicKeyHex().Return("04abcd")

	resp := NewWalletResponse(w)

	assert.Equal(t, addrs[domain.ChainEthereum], resp.Address)
	assert.Equal(t, addrs, resp.Addresses)
	assert.Equal(t, "04abcd", resp.PublicKey)
}

func TestNewSignMessageResponse(t *testing.T) {
	resp := NewSignMessageResponse("0xabc", []byte{0x01, 0xff, 0x1b})
	assert.Equal(t, "0x01ff1b", resp.Signature)
	assert.Equal(t, "0xabc", resp.Address)
}
