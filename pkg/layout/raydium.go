package layout

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
)

// InitializeData matches the Raydium Launchpad initialize instruction
// arguments.
type InitializeData struct {
	BaseMintParam MintParams
	CurveParam    CurveParams
	VestingParam  VestingParam
}

// MintParams describes the token being launched.
type MintParams struct {
	Decimals uint8
	Name     string
	Symbol   string
	URI      string
}

// VestingParam describes the creator vesting schedule. Periods are in
// seconds, amounts in base-token lamports.
type VestingParam struct {
	TotalLockedAmount uint64
	CliffPeriod       uint64
	UnlockPeriod      uint64
}

// Curve variant tags from the launchpad IDL.
const (
	CurveConstant uint8 = iota
	CurveFixed
	CurveLinear
)

// CurveParams is a Borsh enum: a single tag byte selecting the curve shape
// followed by the curve data.
type CurveParams struct {
	Variant uint8
	Data    CurveData
}

// CurveData is the payload shared by all declared curve variants.
type CurveData struct {
	Supply                uint64
	TotalBaseSell         uint64
	TotalQuoteFundRaising uint64
	MigrateType           uint8
}

func (p *CurveParams) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	tag, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	if tag > CurveLinear {
		return fmt.Errorf("unknown curve variant tag %d", tag)
	}
	p.Variant = tag
	return decoder.Decode(&p.Data)
}

func (p CurveParams) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteByte(p.Variant); err != nil {
		return err
	}
	return encoder.Encode(p.Data)
}
