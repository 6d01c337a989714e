package jamstate

// State is the decoded chain state: one optional slot per discriminator in
// fieldTable. A nil field means that discriminator was absent from the
// keyval set that produced this State (spec §3.1, §4.3).
type State struct {
	CurrentValidators     *CurrentValidators
	PreviousValidators    *PreviousValidators
	RecentHistory         *RecentHistory
	Safrole               *Safrole
	Entropy               *Entropy
	NextValidators        *NextValidators
	StatisticsCurrent     *Statistics
	StatisticsPrevious    *Statistics
	ServiceAccounts       *ServiceAccounts
	Judgements            *Judgements
	Timeslot              *Timeslot
	Authorizations        *Authorizations
	WorkReports           *Reports
	AccumulationOutputs   *AccumulationOutputs
	DisputesOffenders     *DisputesOffenders
	ReadyQueue            *ReadyQueue
	AccumulationQueue     *AccumulationQueue
	PrivilegedServices    *PrivilegedServices
	ValidatorMetadataRoot *ValidatorMetadataRoot
}

// KV is a single raw discriminator/value pair as it appears in a state
// snapshot before (or after) field decoding (spec §3.2).
type KV struct {
	Disc  Disc
	Value []byte
}

// set stores a decoded field value into the State slot matching disc. Only
// called with values produced by the corresponding FieldCodec.Decode, so
// the type assertions below always succeed.
func (s *State) set(disc Disc, v any) {
	switch disc {
	case DiscCurrentValidators:
		s.CurrentValidators = v.(*CurrentValidators)
	case DiscPreviousValidators:
		s.PreviousValidators = v.(*PreviousValidators)
	case DiscRecentHistory:
		s.RecentHistory = v.(*RecentHistory)
	case DiscSafrole:
		s.Safrole = v.(*Safrole)
	case DiscEntropy:
		s.Entropy = v.(*Entropy)
	case DiscNextValidators:
		s.NextValidators = v.(*NextValidators)
	case DiscStatisticsCurrent:
		s.StatisticsCurrent = v.(*Statistics)
	case DiscStatisticsPrevious:
		s.StatisticsPrevious = v.(*Statistics)
	case DiscServiceAccounts:
		s.ServiceAccounts = v.(*ServiceAccounts)
	case DiscJudgements:
		s.Judgements = v.(*Judgements)
	case DiscTimeslot:
		s.Timeslot = v.(*Timeslot)
	case DiscAuthorizations:
		s.Authorizations = v.(*Authorizations)
	case DiscWorkReports:
		s.WorkReports = v.(*Reports)
	case DiscAccumulationOutputs:
		s.AccumulationOutputs = v.(*AccumulationOutputs)
	case DiscDisputesOffenders:
		s.DisputesOffenders = v.(*DisputesOffenders)
	case DiscReadyQueue:
		s.ReadyQueue = v.(*ReadyQueue)
	case DiscAccumulationQueue:
		s.AccumulationQueue = v.(*AccumulationQueue)
	case DiscPrivilegedServices:
		s.PrivilegedServices = v.(*PrivilegedServices)
	case DiscValidatorMetadataRoot:
		s.ValidatorMetadataRoot = v.(*ValidatorMetadataRoot)
	}
}

// get returns the decoded value stored in the State slot for disc. Returns
// ok=false when the slot is nil or disc is not in fieldTable.
func (s *State) get(disc Disc) (v any, ok bool) {
	switch disc {
	case DiscCurrentValidators:
		return s.CurrentValidators, s.CurrentValidators != nil
	case DiscPreviousValidators:
		return s.PreviousValidators, s.PreviousValidators != nil
	case DiscRecentHistory:
		return s.RecentHistory, s.RecentHistory != nil
	case DiscSafrole:
		return s.Safrole, s.Safrole != nil
	case DiscEntropy:
		return s.Entropy, s.Entropy != nil
	case DiscNextValidators:
		return s.NextValidators, s.NextValidators != nil
	case DiscStatisticsCurrent:
		return s.StatisticsCurrent, s.StatisticsCurrent != nil
	case DiscStatisticsPrevious:
		return s.StatisticsPrevious, s.StatisticsPrevious != nil
	case DiscServiceAccounts:
		return s.ServiceAccounts, s.ServiceAccounts != nil
	case DiscJudgements:
		return s.Judgements, s.Judgements != nil
	case DiscTimeslot:
		return s.Timeslot, s.Timeslot != nil
	case DiscAuthorizations:
		return s.Authorizations, s.Authorizations != nil
	case DiscWorkReports:
		return s.WorkReports, s.WorkReports != nil
	case DiscAccumulationOutputs:
		return s.AccumulationOutputs, s.AccumulationOutputs != nil
	case DiscDisputesOffenders:
		return s.DisputesOffenders, s.DisputesOffenders != nil
	case DiscReadyQueue:
		return s.ReadyQueue, s.ReadyQueue != nil
	case DiscAccumulationQueue:
		return s.AccumulationQueue, s.AccumulationQueue != nil
	case DiscPrivilegedServices:
		return s.PrivilegedServices, s.PrivilegedServices != nil
	case DiscValidatorMetadataRoot:
		return s.ValidatorMetadataRoot, s.ValidatorMetadataRoot != nil
	default:
		return nil, false
	}
}
