package memedecoder

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/Gh05d/meme-decoder/pkg/layout"
)

// TokenMetadata is the full projection of a token-creation instruction.
// Field names follow the on-chain layouts.
type TokenMetadata struct {
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	URI          string `json:"uri"`
	Mint         string `json:"mint"`
	BondingCurve string `json:"bonding_curve"`
	Developer    string `json:"developer"`
}

// MintInfo is the minimal name/symbol projection shared by the Raydium and
// Moonshot entry points.
type MintInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CreateToken is the public shape of a decoded boop.fun create_token.
type CreateToken struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	URI    string `json:"uri"`
	Salt   uint64 `json:"salt"`
}

// CurveState mirrors the on-chain bonding-curve reserves.
type CurveState struct {
	VirtualTokenReserves uint64 `json:"virtual_token_reserves"`
	VirtualSolReserves   uint64 `json:"virtual_sol_reserves"`
	RealTokenReserves    uint64 `json:"real_token_reserves"`
	RealSolReserves      uint64 `json:"real_sol_reserves"`
	TokenTotalSupply     uint64 `json:"token_total_supply"`
	Complete             bool   `json:"complete"`
}

func newCreateToken(args *layout.CreateTokenArgs) *CreateToken {
	return &CreateToken{
		Name:   args.Name,
		Symbol: args.Symbol,
		URI:    args.URI,
		Salt:   args.Salt,
	}
}

func newMintInfo(name, symbol string) *MintInfo {
	return &MintInfo{Name: name, Symbol: symbol}
}

// Base58Pubkey renders a raw 32-byte account key as base58. Intended for
// callers holding key bytes from account lists rather than instruction
// data.
func Base58Pubkey(raw []byte) (string, error) {
	if len(raw) != solana.PublicKeyLength {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(raw))
	}
	return base58.Encode(raw), nil
}
