package jamstate

import "github.com/colossi-labs/jamstate/jamerr"

// Disc is the one-byte key discriminating a field within the chain state
// (spec §3.2). The valid range is closed: any byte outside the table below
// is rejected rather than silently accepted (spec §4.1).
type Disc byte

const (
	DiscCurrentValidators     Disc = 0x01 // κ
	DiscPreviousValidators    Disc = 0x02 // λ
	DiscRecentHistory         Disc = 0x03 // β
	DiscSafrole               Disc = 0x04 // γ
	DiscJudgements            Disc = 0x05 // ψ
	DiscNextValidators        Disc = 0x06 // ι
	DiscStatisticsCurrent     Disc = 0x07 // χ (current epoch)
	DiscStatisticsPrevious    Disc = 0x08 // χ (previous epoch)
	DiscServiceAccounts       Disc = 0x09 // δ
	DiscEntropy               Disc = 0x0A // η
	DiscTimeslot              Disc = 0x0B // τ
	DiscWorkReports           Disc = 0x0C // ρ
	DiscAuthorizations        Disc = 0x0D // φ
	DiscAccumulationOutputs   Disc = 0x0E // ξ
	DiscDisputesOffenders     Disc = 0x0F
	DiscReadyQueue            Disc = 0x10
	DiscAccumulationQueue     Disc = 0x11
	DiscPrivilegedServices    Disc = 0x12
	DiscValidatorMetadataRoot Disc = 0x13
)

// FieldCodec is one row of the closed discriminator table: a name for error
// messages and the decode/encode function pair for that field's wire shape
// (spec Design Note 1 — a dispatch table rather than reflection).
type FieldCodec struct {
	Disc   Disc
	Name   string
	Decode func([]byte) (any, error)
	Encode func(any) ([]byte, error)
}

// fieldTable is the closed, ordered enumeration of every discriminator this
// package understands. Order matters for EmitKeyvals (spec §4.3, P4):
// keyvals are always emitted in ascending discriminator order.
var fieldTable = []FieldCodec{
	{DiscCurrentValidators, "current_validators", decodeCurrentValidators, encodeCurrentValidators},
	{DiscPreviousValidators, "previous_validators", decodePreviousValidators, encodePreviousValidators},
	{DiscRecentHistory, "recent_history", decodeRecentHistory, encodeRecentHistory},
	{DiscSafrole, "safrole", decodeSafrole, encodeSafrole},
	{DiscJudgements, "judgements", decodeJudgements, encodeJudgements},
	{DiscNextValidators, "next_validators", decodeNextValidators, encodeNextValidators},
	{DiscStatisticsCurrent, "statistics_current", decodeStatistics, encodeStatistics},
	{DiscStatisticsPrevious, "statistics_previous", decodeStatistics, encodeStatistics},
	{DiscServiceAccounts, "service_accounts", decodeServiceAccounts, encodeServiceAccounts},
	{DiscEntropy, "entropy", decodeEntropy, encodeEntropy},
	{DiscTimeslot, "timeslot", decodeTimeslot, encodeTimeslot},
	{DiscWorkReports, "work_reports", decodeReports, encodeReports},
	{DiscAuthorizations, "authorizations", decodeAuthorizations, encodeAuthorizations},
	{DiscAccumulationOutputs, "accumulation_outputs", decodeAccumulationOutputs, encodeAccumulationOutputs},
	{DiscDisputesOffenders, "disputes_offenders", decodeDisputesOffenders, encodeDisputesOffenders},
	{DiscReadyQueue, "ready_queue", decodeReadyQueue, encodeReadyQueue},
	{DiscAccumulationQueue, "accumulation_queue", decodeAccumulationQueue, encodeAccumulationQueue},
	{DiscPrivilegedServices, "privileged_services", decodePrivilegedServices, encodePrivilegedServices},
	{DiscValidatorMetadataRoot, "validator_metadata_root", decodeValidatorMetadataRoot, encodeValidatorMetadataRoot},
}

var fieldByDisc = func() map[Disc]*FieldCodec {
	m := make(map[Disc]*FieldCodec, len(fieldTable))
	for i := range fieldTable {
		m[fieldTable[i].Disc] = &fieldTable[i]
	}
	return m
}()

func lookupFieldCodec(d Disc) (*FieldCodec, error) {
	fc, ok := fieldByDisc[d]
	if !ok {
		return nil, jamerr.ErrUnknownDiscriminator
	}
	return fc, nil
}
