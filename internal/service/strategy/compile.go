package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SureshAmal/mmcopilot-mcp/internal/domain"
)

// ErrInvalidParameter marks enum or range violations caught before
// compilation. No network call happens once this is returned.
var ErrInvalidParameter = errors.New("invalid parameter")

const (
	defaultExchange       = "NSE"
	defaultContract       = "NEAR"
	defaultExpiry         = "MONTHLY"
	defaultQty            = 1
	defaultLot            = 1
	defaultQtyType        = "Qty"
	defaultAverageValue   = 100
	defaultIntradayTarget = 100
	defaultMaximumSteps   = 50
	defaultEntryTime      = "9:16"
	defaultExitTime       = "15:25"
	defaultRolloverTime   = "0:0"
	defaultRequiredMargin = 100000

	// strategyTemplateID is the platform-side scalping template every
	// created strategy is instantiated from.
	strategyTemplateID = "YioJhK5IqBULe8fPLMnXaAaC0$aC0$"
)

// ResolveIntent applies alias overrides, fills every unset field from the
// default table and validates enums and ranges. The returned intent is
// total: no field is left unresolved. Resolution is idempotent; the input
// is not mutated.
func ResolveIntent(in domain.StrategyIntent) (domain.StrategyIntent, error) {
	out := in

	// Single-level alias resolution. An alias, when set, replaces its
	// canonical counterpart before defaulting; aliases never combine.
	if out.Quantity != 0 {
		out.Qty = out.Quantity
		out.Quantity = 0
	}
	if out.AveragingPoints != 0 {
		out.AverageValue = out.AveragingPoints
		out.AveragingPoints = 0
	}
	if out.TargetPoints != 0 {
		out.IntradayTarget = out.TargetPoints
		out.TargetPoints = 0
	}
	if out.MaxSteps != 0 {
		out.MaximumSteps = out.MaxSteps
		out.MaxSteps = 0
	}
	if out.Side != "" {
		out.JobbingSide = out.Side
		out.Side = ""
	}

	out.Symbol = strings.TrimSpace(out.Symbol)
	if out.Symbol == "" {
		return domain.StrategyIntent{}, fmt.Errorf("%w: symbol is required", ErrInvalidParameter)
	}

	if out.Exchange == "" {
		out.Exchange = defaultExchange
	}
	if out.Segment == "" {
		out.Segment = string(domain.SegmentEquity)
	}
	if out.Contract == "" {
		out.Contract = defaultContract
	}
	if out.Expiry == "" {
		out.Expiry = defaultExpiry
	}
	if out.StrategyName == "" {
		out.StrategyName = out.Symbol + " Scalping"
	}
	if out.Qty == 0 {
		out.Qty = defaultQty
	}
	if out.Lot == 0 {
		out.Lot = defaultLot
	}
	if out.QtyType == "" {
		out.QtyType = defaultQtyType
	}
	if out.AverageValue == 0 {
		out.AverageValue = defaultAverageValue
	}
	if out.AverageBy == "" {
		out.AverageBy = string(domain.PointsBasisPoint)
	}
	if out.IntradayTarget == 0 {
		out.IntradayTarget = defaultIntradayTarget
	}
	if out.TargetBy == "" {
		out.TargetBy = string(domain.PointsBasisPoint)
	}
	if out.MaximumSteps == 0 {
		out.MaximumSteps = defaultMaximumSteps
	}
	if out.JobbingSide == "" {
		out.JobbingSide = string(domain.SideBuy)
	}
	out.JobbingSide = strings.ToUpper(strings.TrimSpace(out.JobbingSide))
	if out.IntradayEntryTime == "" {
		out.IntradayEntryTime = defaultEntryTime
	}
	if out.IntradayExitTime == "" {
		out.IntradayExitTime = defaultExitTime
	}
	if out.OrderType == "" {
		out.OrderType = string(domain.OrderTypeMarket)
	}
	if out.ProductType == "" {
		out.ProductType = string(domain.ProductTypeNormal)
	}
	if out.RolloverTime == "" {
		out.RolloverTime = defaultRolloverTime
	}
	if out.RequiredMargin == 0 {
		out.RequiredMargin = defaultRequiredMargin
	}
	if out.AllowUpdateParameters == nil {
		allow := true
		out.AllowUpdateParameters = &allow
	}

	if err := validateIntent(out); err != nil {
		return domain.StrategyIntent{}, err
	}
	return out, nil
}

func validateIntent(in domain.StrategyIntent) error {
	switch domain.Side(in.JobbingSide) {
	case domain.SideBuy, domain.SideSell:
	default:
		return fmt.Errorf("%w: side must be BUY or SELL, got %q", ErrInvalidParameter, in.JobbingSide)
	}
	switch domain.Segment(in.Segment) {
	case domain.SegmentEquity, domain.SegmentFutures, domain.SegmentOptions:
	default:
		return fmt.Errorf("%w: segment must be EQ, FUT or OPT, got %q", ErrInvalidParameter, in.Segment)
	}
	switch domain.OrderType(in.OrderType) {
	case domain.OrderTypeMarket, domain.OrderTypeLimit:
	default:
		return fmt.Errorf("%w: order_type must be %q or %q, got %q", ErrInvalidParameter, domain.OrderTypeMarket, domain.OrderTypeLimit, in.OrderType)
	}
	switch domain.ProductType(in.ProductType) {
	case domain.ProductTypeNormal, domain.ProductTypeIntraday:
	default:
		return fmt.Errorf("%w: product_type must be NRML or MIS, got %q", ErrInvalidParameter, in.ProductType)
	}
	switch in.QtyType {
	case "Qty", "Lot":
	default:
		return fmt.Errorf("%w: qty_type must be Qty or Lot, got %q", ErrInvalidParameter, in.QtyType)
	}
	switch domain.OptionClass(in.OptionType) {
	case domain.OptionClassNone, domain.OptionClassCall, domain.OptionClassPut:
	default:
		return fmt.Errorf("%w: option_type must be CE or PE, got %q", ErrInvalidParameter, in.OptionType)
	}
	switch domain.PointsBasis(in.AverageBy) {
	case domain.PointsBasisPoint, domain.PointsBasisPercent:
	default:
		return fmt.Errorf("%w: average_by must be Point or Percentage, got %q", ErrInvalidParameter, in.AverageBy)
	}
	switch domain.PointsBasis(in.TargetBy) {
	case domain.PointsBasisPoint, domain.PointsBasisPercent:
	default:
		return fmt.Errorf("%w: target_by must be Point or Percentage, got %q", ErrInvalidParameter, in.TargetBy)
	}
	if in.Qty <= 0 {
		return fmt.Errorf("%w: qty must be positive, got %d", ErrInvalidParameter, in.Qty)
	}
	if in.Lot <= 0 {
		return fmt.Errorf("%w: lot must be positive, got %d", ErrInvalidParameter, in.Lot)
	}
	if in.AverageValue <= 0 {
		return fmt.Errorf("%w: average_value must be positive, got %d", ErrInvalidParameter, in.AverageValue)
	}
	if in.IntradayTarget <= 0 {
		return fmt.Errorf("%w: intraday_target must be positive, got %d", ErrInvalidParameter, in.IntradayTarget)
	}
	if in.MaximumSteps <= 0 {
		return fmt.Errorf("%w: maximum_steps must be positive, got %d", ErrInvalidParameter, in.MaximumSteps)
	}
	return nil
}

// MixName derives the composite display name. Equity strategies concatenate
// symbol, segment and exchange; futures and options use symbol, segment,
// contract and expiry.
func MixName(in domain.StrategyIntent) string {
	if domain.Segment(in.Segment) == domain.SegmentEquity {
		return fmt.Sprintf("%s %s %s", in.Symbol, in.Segment, in.Exchange)
	}
	return fmt.Sprintf("%s %s %s %s", in.Symbol, in.Segment, in.Contract, in.Expiry)
}

// ShortDescription and LongDescription are templated sentences derived from
// the resolved intent. They are never supplied independently.
func ShortDescription(in domain.StrategyIntent) string {
	return fmt.Sprintf("%s %s at every %d points", in.JobbingSide, in.Symbol, in.AverageValue)
}

func LongDescription(in domain.StrategyIntent) string {
	return fmt.Sprintf("%s %s at every %d points down side and book profit at %d points.",
		in.JobbingSide, in.Symbol, in.AverageValue, in.IntradayTarget)
}

// Compile maps a fully resolved intent onto the canonical wire record. Pure
// and idempotent: the same resolved intent always yields the same record,
// and the intent is never mutated. The id placeholder stays empty; the
// platform assigns it.
func Compile(in domain.StrategyIntent) domain.CanonicalStrategyRecord {
	allowUpdate := true
	if in.AllowUpdateParameters != nil {
		allowUpdate = *in.AllowUpdateParameters
	}
	return domain.CanonicalStrategyRecord{
		ID:               "",
		StrategyName:     in.StrategyName,
		ShortDescription: ShortDescription(in),
		LongDescription:  LongDescription(in),
		StrategyID:       strategyTemplateID,
		MixName:          MixName(in),

		MainExchange: in.Exchange,
		MainSegment:  in.Segment,
		MainSymbol:   in.Symbol,
		MainContract: in.Contract,
		MainExpiry:   in.Expiry,

		ProductType:          in.ProductType,
		ExitOrderProductType: in.ExitOrderProductType,
		QtyType:              in.QtyType,
		Qty:                  in.Qty,
		Lot:                  in.Lot,

		ATM:         in.ATM,
		StrikePrice: in.StrikePrice,
		OptionType:  in.OptionType,

		IntradayEntryTime: in.IntradayEntryTime,
		IntradayExitTime:  in.IntradayExitTime,
		IsIntraday:        in.IsIntraday,

		JobbingSide:       in.JobbingSide,
		JobbingStartPrice: in.JobbingStartPrice,
		JobbingEndPrice:   in.JobbingEndPrice,

		AverageBy:          in.AverageBy,
		AverageValue:       in.AverageValue,
		TargetBy:           in.TargetBy,
		Target:             in.Target,
		IntradayTarget:     in.IntradayTarget,
		MaximumSteps:       in.MaximumSteps,
		MaximumTargetSteps: in.MaximumTargetSteps,

		SqOffOnMaximumSteps:      in.SqOffOnMaximumSteps,
		CalculateQtyOnMarketJump: in.CalculateQtyOnMarketJump,
		AllowUpdateParameters:    allowUpdate,

		OrderType:             in.OrderType,
		NoOfLimitOrderRetry:   in.NoOfLimitOrderRetry,
		RetryAtEverySeconds:   in.RetryAtEverySeconds,
		MarketOrderAfterRetry: in.MarketOrderAfterRetry,

		ResetCycleByMasterTPSL: in.ResetCycleByMasterTPSL,

		RolloverBeforeDays: in.RolloverBeforeDays,
		IsAutoRollover:     in.IsAutoRollover,
		IsAddHedgeLeg:      in.IsAddHedgeLeg,
		RolloverTime:       in.RolloverTime,

		MasterTPMoney:           in.MasterTPMoney,
		MasterSLMoney:           in.MasterSLMoney,
		ResetCycleOnPositiveMTM: in.ResetCycleOnPositiveMTM,
		RequiredMargin:          in.RequiredMargin,

		IsTrailSL:   in.IsTrailSL,
		ProfitMove:  in.ProfitMove,
		SLMove:      in.SLMove,
		NoOfTrailSL: in.NoOfTrailSL,

		ScalpingOpeningQty: in.ScalpingOpeningQty,
		IncreaseQtyOnAvg:   in.IncreaseQtyOnAvg,
		IncreaseQty:        in.IncreaseQty,
		IncreaseQtyType:    in.IncreaseQtyType,

		Rebacktest:             in.Rebacktest,
		Sub:                    []string{},
		EffectAllSubStrategies: in.EffectAllSubStrategies,
	}
}

// CompileIntent resolves and compiles in one step.
func CompileIntent(in domain.StrategyIntent) (domain.CanonicalStrategyRecord, error) {
	resolved, err := ResolveIntent(in)
	if err != nil {
		return domain.CanonicalStrategyRecord{}, err
	}
	return Compile(resolved), nil
}
