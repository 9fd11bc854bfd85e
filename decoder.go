// Package memedecoder decodes launchpad token instructions and account
// state from raw Solana byte buffers into typed metadata records. All
// decoding is structural: buffers are untrusted, every read is bounds
// checked, and malformed input yields an error, never a panic.
//
// Each entry point targets one program format. Callers probing a buffer of
// unknown origin try parsers in turn; the engine never guesses the format.
package memedecoder

import (
	"fmt"

	bin "github.com/gagliardetto/binary"

	"github.com/Gh05d/meme-decoder/internal/cursor"
	"github.com/Gh05d/meme-decoder/pkg/layout"
)

const discriminatorLen = 8

// stripDiscriminator drops the 8-byte instruction tag. The tag value is not
// compared against any program: callers already picked the parser for the
// format they expect.
func stripDiscriminator(buf []byte) ([]byte, error) {
	if len(buf) < discriminatorLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrShortBuffer, len(buf))
	}
	return buf[discriminatorLen:], nil
}

// decodeBorsh runs a one-pass schema decode of the whole payload. Trailing
// bytes are rejected, matching borsh try_from_slice semantics.
func decodeBorsh(payload []byte, out interface{}) error {
	dec := bin.NewBorshDecoder(payload)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDeserialize, err)
	}
	if n := dec.Remaining(); n > 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrDeserialize, n)
	}
	return nil
}

// ParseBoopCreateToken decodes a boop.fun create_token instruction.
func ParseBoopCreateToken(buf []byte) (*CreateToken, error) {
	payload, err := stripDiscriminator(buf)
	if err != nil {
		return nil, err
	}
	var args layout.CreateTokenArgs
	if err := decodeBorsh(payload, &args); err != nil {
		return nil, fmt.Errorf("create_token: %w", err)
	}
	return newCreateToken(&args), nil
}

// ParseRaydiumInitialize decodes a Raydium Launchpad initialize instruction
// and keeps only the base mint name and symbol. Curve and vesting
// parameters are decoded (a bad variant tag still fails the call) but not
// returned.
func ParseRaydiumInitialize(buf []byte) (*MintInfo, error) {
	payload, err := stripDiscriminator(buf)
	if err != nil {
		return nil, err
	}
	var data layout.InitializeData
	if err := decodeBorsh(payload, &data); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	return newMintInfo(data.BaseMintParam.Name, data.BaseMintParam.Symbol), nil
}

// ParsePumpFunCreate decodes a pump.fun or LetsBonk create instruction.
func ParsePumpFunCreate(buf []byte) (*TokenMetadata, error) {
	payload, err := stripDiscriminator(buf)
	if err != nil {
		return nil, err
	}
	c := cursor.New(payload)
	name, err := c.ReadString()
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	symbol, err := c.ReadString()
	if err != nil {
		return nil, fmt.Errorf("symbol: %w", err)
	}
	uri, err := c.ReadString()
	if err != nil {
		return nil, fmt.Errorf("uri: %w", err)
	}
	mint, err := c.ReadPubkey()
	if err != nil {
		return nil, fmt.Errorf("mint: %w", err)
	}
	bondingCurve, err := c.ReadPubkey()
	if err != nil {
		return nil, fmt.Errorf("bonding curve: %w", err)
	}
	developer, err := c.ReadPubkey()
	if err != nil {
		return nil, fmt.Errorf("developer: %w", err)
	}
	return &TokenMetadata{
		Name:         name,
		Symbol:       symbol,
		URI:          uri,
		Mint:         mint.String(),
		BondingCurve: bondingCurve.String(),
		Developer:    developer.String(),
	}, nil
}

// ParseCurveState decodes a pump.fun bonding-curve account: five u64
// reserves followed by the completion flag.
func ParseCurveState(buf []byte) (*CurveState, error) {
	payload, err := stripDiscriminator(buf)
	if err != nil {
		return nil, err
	}
	c := cursor.New(payload)
	var reserves [5]uint64
	for i := range reserves {
		if reserves[i], err = c.ReadU64(); err != nil {
			return nil, fmt.Errorf("reserve %d: %w", i, err)
		}
	}
	complete, err := c.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("complete flag: %w", err)
	}
	return &CurveState{
		VirtualTokenReserves: reserves[0],
		VirtualSolReserves:   reserves[1],
		RealTokenReserves:    reserves[2],
		RealSolReserves:      reserves[3],
		TokenTotalSupply:     reserves[4],
		Complete:             complete,
	}, nil
}

// ParseMoonshotTokenMint decodes the name and symbol prefix of a Moonshot
// tokenMint instruction. The instruction carries more fields (uri, decimals,
// curve type) which are left unread; trailing bytes are not an error.
func ParseMoonshotTokenMint(buf []byte) (*MintInfo, error) {
	payload, err := stripDiscriminator(buf)
	if err != nil {
		return nil, err
	}
	c := cursor.New(payload)
	name, err := c.ReadString()
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	symbol, err := c.ReadString()
	if err != nil {
		return nil, fmt.Errorf("symbol: %w", err)
	}
	return newMintInfo(name, symbol), nil
}
